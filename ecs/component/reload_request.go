package component

// ReloadRequest is a marker component used to signal the scene to rebuild
// the level from scratch. Systems create a short-lived entity carrying it.
type ReloadRequest struct{}

var ReloadRequestComponent = NewComponent[ReloadRequest]()

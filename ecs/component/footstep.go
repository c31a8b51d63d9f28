package component

import "strconv"

// FootstepClipName returns the audio clip name of footstep variant i.
func FootstepClipName(i int) string {
	return "footstep" + strconv.Itoa(i)
}

package calibration

// Target returns the fixation point for the current stage in viewport
// pixels. Corners are inset by TargetPadding. These are render hints only
// and take no part in the calibration math.
func (c *Controller) Target(viewportW, viewportH float64) (x, y float64) {
	pad := c.TargetPadding
	switch c.stage {
	case StageTopLeft:
		return pad, pad
	case StageTopRight:
		return viewportW - pad, pad
	case StageBottomRight:
		return viewportW - pad, viewportH - pad
	case StageBottomLeft:
		return pad, viewportH - pad
	default:
		// Center stage, and a neutral point once finished.
		return viewportW / 2, viewportH / 2
	}
}

// Instruction returns the on-screen prompt for the current stage.
func (c *Controller) Instruction() string {
	switch c.stage {
	case StageCenter:
		return "Look at the center dot"
	case StageTopLeft:
		return "Look at the top-left dot"
	case StageTopRight:
		return "Look at the top-right dot"
	case StageBottomRight:
		return "Look at the bottom-right dot"
	case StageBottomLeft:
		return "Look at the bottom-left dot"
	case StageFinished:
		return "Calibration complete"
	}
	return ""
}

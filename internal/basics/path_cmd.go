package basics

// PathCommand tags a vertex in a vertex stream. The encoding follows AGG's
// path_commands_e: the low nibble is the command, the high bits carry the
// end-poly orientation/close flags.
type PathCommand uint32

const (
	PathCmdStop    PathCommand = 0
	PathCmdMoveTo  PathCommand = 1
	PathCmdLineTo  PathCommand = 2
	PathCmdCurve3  PathCommand = 3
	PathCmdCurve4  PathCommand = 4
	PathCmdEndPoly PathCommand = 0x0F
	PathCmdMask    PathCommand = 0x0F
)

const (
	PathFlagsNone  PathCommand = 0
	PathFlagsCCW   PathCommand = 0x10
	PathFlagsCW    PathCommand = 0x20
	PathFlagsClose PathCommand = 0x40
	PathFlagsMask  PathCommand = 0xF0
)

func (c PathCommand) IsVertex() bool {
	cmd := c & PathCmdMask
	return cmd >= PathCmdMoveTo && cmd < PathCmdEndPoly
}

func (c PathCommand) IsMoveTo() bool  { return c&PathCmdMask == PathCmdMoveTo }
func (c PathCommand) IsLineTo() bool  { return c&PathCmdMask == PathCmdLineTo }
func (c PathCommand) IsCurve3() bool  { return c&PathCmdMask == PathCmdCurve3 }
func (c PathCommand) IsCurve4() bool  { return c&PathCmdMask == PathCmdCurve4 }
func (c PathCommand) IsCurve() bool   { return c.IsCurve3() || c.IsCurve4() }
func (c PathCommand) IsStop() bool    { return c&PathCmdMask == PathCmdStop }
func (c PathCommand) IsEndPoly() bool { return c&PathCmdMask == PathCmdEndPoly }
func (c PathCommand) IsClose() bool {
	return c&(PathCmdMask|PathFlagsClose) == PathCmdEndPoly|PathFlagsClose
}

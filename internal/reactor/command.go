package reactor

import "context"

// handleCommand implements §6's command surface plus §9's supplemented
// Hello/ShowTiming/DebugDump/DumpTree/ConfigReload commands. MoveNode,
// Group, Ungroup, Shuffle and ConfigReload trigger a relayout; Split only
// wraps the selection in a one-child container, which leaves every leaf's
// rectangle as it was, so it does not. MoveFocus dispatches a raise when
// it lands on a window; Ascend and Descend move the selection without
// raising anything.
func (r *Reactor) handleCommand(ctx context.Context, cmd Command) {
	space := cmd.Space
	if space == "" {
		if s, ok := r.mainSpace(); ok {
			space = s
		}
	}

	resp := Response{OK: true}

	switch cmd.Kind {
	case CmdHello:
		resp.Hello = "swellgo"

	case CmdMoveFocus:
		if raise, ok := r.manager.MoveFocus(space, cmd.Direction); ok {
			r.dispatchRaise(raise.Window)
		}

	case CmdMoveNode:
		if r.manager.MoveNode(space, cmd.Direction) {
			r.relayout(ctx, false)
		}

	case CmdSplit:
		r.manager.Split(space, cmd.Orientation)

	case CmdGroup:
		r.manager.Group(space, cmd.Orientation)
		r.relayout(ctx, false)

	case CmdUngroup:
		r.manager.Ungroup(space)
		r.relayout(ctx, false)

	case CmdAscend:
		r.manager.Ascend(space)

	case CmdDescend:
		r.manager.Descend(space)

	case CmdShuffle:
		r.manager.Shuffle(space)
		r.relayout(ctx, false)

	case CmdDebugDump:
		r.manager.Debug(space)

	case CmdDumpTree:
		if dump, ok := r.manager.Dump(space); ok {
			resp.Tree = dump
		} else {
			resp.OK = false
			resp.Error = "unknown space"
		}

	case CmdShowTiming:
		if r.timing != nil {
			s := r.timing.Summarize()
			resp.Timing = &TimingSummary{
				Count:           s.Count,
				MeanDispatchNS:  s.MeanDispatch.Nanoseconds(),
				MaxDispatchNS:   s.MaxDispatch.Nanoseconds(),
				MeanHandleNS:    s.MeanHandle.Nanoseconds(),
				MaxHandleNS:     s.MaxHandle.Nanoseconds(),
				TotalAnimFrames: s.TotalAnimFrames,
			}
		} else {
			resp.Timing = &TimingSummary{}
		}

	case CmdConfigReload:
		if cmd.NewConfig != nil {
			r.cfg = *cmd.NewConfig
			r.runner = newRunnerFromConfig(r.cfg)
			r.relayout(ctx, false)
		}
	}

	if cmd.Reply != nil {
		select {
		case cmd.Reply <- resp:
		default:
		}
	}
}

package reactor

import (
	"bufio"
	"context"
	"encoding/json"
	"net"
	"os"
	"time"

	"github.com/bnema/swellgo/internal/debugproto"
	"github.com/bnema/swellgo/internal/wm"
)

func wmSpaceFromString(s string) wm.SpaceId { return wm.SpaceId(s) }

// replyTimeout bounds how long a debug-socket connection waits for the
// reactor's turn to answer its Command, so a wedged reactor can't hang a
// client forever.
const replyTimeout = 2 * time.Second

// ServeDebugSocket listens on sockPath for newline-delimited
// debugproto.Request lines, translates each into a Command carried as an
// EventCommand, and writes back the reactor's Response as one
// debugproto.Response line. It accepts connections until ctx is canceled.
// Per §5 the reactor itself is never blocked by this: each connection's
// goroutine only ever enqueues through r.EnqueueEvent and waits on its own
// buffered reply channel.
func (r *Reactor) ServeDebugSocket(ctx context.Context, sockPath string) error {
	_ = os.Remove(sockPath)
	lc := net.ListenConfig{}
	ln, err := lc.Listen(ctx, "unix", sockPath)
	if err != nil {
		return err
	}
	go func() {
		<-ctx.Done()
		_ = ln.Close()
	}()

	for {
		conn, err := ln.Accept()
		if err != nil {
			select {
			case <-ctx.Done():
				return nil
			default:
				r.logger.Warn().Err(err).Msg("debug socket: accept failed")
				continue
			}
		}
		go r.serveDebugConn(conn)
	}
}

func (r *Reactor) serveDebugConn(conn net.Conn) {
	defer func() { _ = conn.Close() }()

	_ = conn.SetDeadline(time.Now().Add(replyTimeout))

	scanner := bufio.NewScanner(conn)
	if !scanner.Scan() {
		return
	}

	var req debugproto.Request
	if err := json.Unmarshal(scanner.Bytes(), &req); err != nil {
		_ = json.NewEncoder(conn).Encode(debugproto.Response{OK: false, Error: "malformed request: " + err.Error()})
		return
	}

	cmd := Command{Reply: make(chan Response, 1)}
	switch req.Type {
	case debugproto.RequestHello:
		cmd.Kind = CmdHello
	case debugproto.RequestDumpTree:
		cmd.Kind = CmdDumpTree
		cmd.Space = wmSpaceFromString(req.Space)
	case debugproto.RequestShowTiming:
		cmd.Kind = CmdShowTiming
	default:
		_ = json.NewEncoder(conn).Encode(debugproto.Response{OK: false, Error: "unknown request type"})
		return
	}

	r.EnqueueEvent(Event{Kind: EventCommand, Command: cmd})

	select {
	case resp := <-cmd.Reply:
		_ = json.NewEncoder(conn).Encode(toWireResponse(resp))
	case <-time.After(replyTimeout):
		_ = json.NewEncoder(conn).Encode(debugproto.Response{OK: false, Error: "reactor did not reply in time"})
	}
}

func toWireResponse(resp Response) debugproto.Response {
	out := debugproto.Response{OK: resp.OK, Error: resp.Error, Tree: resp.Tree, Hello: resp.Hello}
	if resp.Timing != nil {
		out.Timing = &debugproto.TimingPayload{
			Count:           resp.Timing.Count,
			MeanDispatch:    time.Duration(resp.Timing.MeanDispatchNS),
			MaxDispatch:     time.Duration(resp.Timing.MaxDispatchNS),
			MeanHandle:      time.Duration(resp.Timing.MeanHandleNS),
			MaxHandle:       time.Duration(resp.Timing.MaxHandleNS),
			TotalAnimFrames: resp.Timing.TotalAnimFrames,
		}
	}
	return out
}

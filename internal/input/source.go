package input

import (
	"github.com/gdamore/tcell/v2"
	"github.com/golang/glog"
)

// Poller is the blocking half of a tcell.Screen.
type Poller interface {
	PollEvent() tcell.Event
}

// Source owns the terminal event stream and feeds translated commands to
// a Queue. It never touches game state.
type Source struct {
	poller Poller
	queue  *Queue
}

func NewSource(poller Poller, queue *Queue) *Source {
	return &Source{poller: poller, queue: queue}
}

// Listen blocks reading events until the screen is finalized. A read
// fault pushes Quit so the loop shuts down instead of waiting forever.
func (s *Source) Listen() {
	defer func() {
		if r := recover(); r != nil {
			glog.Errorf("input: listener panic: %v", r)
			s.queue.Push(Quit)
		}
	}()

	for {
		switch ev := s.poller.PollEvent().(type) {
		case nil:
			glog.V(1).Info("input: event stream closed")
			return
		case *tcell.EventError:
			glog.Errorf("input: reading event: %v", ev)
			s.queue.Push(Quit)
			return
		case *tcell.EventKey:
			cmd, ok := Translate(ev)
			if !ok {
				continue
			}
			glog.V(2).Infof("input: %s", cmd)
			s.queue.Push(cmd)
		}
	}
}

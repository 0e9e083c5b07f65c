package interrupt

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
)

// Sender is the part of *tea.Program the relay needs.
type Sender interface {
	Send(msg tea.Msg)
}

// TerminateMsg is delivered on SIGTERM. Unlike InterruptMsg it is not offered to
// the bus listeners: the program should stop without answering.
type TerminateMsg struct{}

// Relay forwards SIGINT as InterruptMsg and SIGTERM as TerminateMsg until ctx is done.
// The program should be started with tea.WithoutSignalHandler so the signals reach the relay.
func Relay(ctx context.Context, p Sender) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, os.Interrupt, syscall.SIGTERM)
	go func() {
		defer signal.Stop(sigs)
		for {
			select {
			case <-ctx.Done():
				return
			case sig := <-sigs:
				if sig == syscall.SIGTERM {
					p.Send(TerminateMsg{})
					continue
				}
				p.Send(InterruptMsg{})
			}
		}
	}()
}

//go:build unix

package interrupt

import (
	"context"
	"syscall"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type chanSender chan tea.Msg

func (c chanSender) Send(msg tea.Msg) { c <- msg }

func TestRelay_ForwardsSIGINT(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sent := make(chanSender, 1)
	Relay(ctx, sent)
	require.NoError(t, syscall.Kill(syscall.Getpid(), syscall.SIGINT))

	select {
	case msg := <-sent:
		assert.IsType(t, InterruptMsg{}, msg)
	case <-time.After(2 * time.Second):
		t.Fatal("interrupt was not relayed")
	}
}

func TestRelay_SIGTERMTerminates(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sent := make(chanSender, 1)
	Relay(ctx, sent)
	require.NoError(t, syscall.Kill(syscall.Getpid(), syscall.SIGTERM))

	select {
	case msg := <-sent:
		assert.IsType(t, TerminateMsg{}, msg)
	case <-time.After(2 * time.Second):
		t.Fatal("terminate was not relayed")
	}
}

package app

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jekabolt/helpdesk/config"
	"github.com/jekabolt/helpdesk/internal/dependency/mocks"
)

type helpdesk struct {
	*mocks.Submitter
	*mocks.Tickets
}

func TestStartStop(t *testing.T) {
	c := &config.Config{}
	c.HTTP.Address = "127.0.0.1"
	c.HTTP.Port = "0"

	a := New(c, helpdesk{Submitter: mocks.NewSubmitter(t), Tickets: mocks.NewTickets(t)})
	ctx := context.Background()
	require.NoError(t, a.Start(ctx))

	select {
	case <-a.Done():
		t.Fatal("app exited before Stop")
	default:
	}

	stopCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	a.Stop(stopCtx)

	select {
	case <-a.Done():
	case <-time.After(5 * time.Second):
		t.Fatal("app did not exit")
	}
}

func TestStart_NoBaseURL(t *testing.T) {
	a := New(&config.Config{}, nil)
	assert.Error(t, a.Start(context.Background()))
}

func TestAddr(t *testing.T) {
	c := &config.Config{}
	c.HTTP.Port = "8080"
	assert.Equal(t, ":8080", New(c, nil).Addr())
}

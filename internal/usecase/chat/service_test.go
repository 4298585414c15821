package chat

import (
	"context"
	"errors"
	"testing"

	"github.com/kailas-cloud/askdb/internal/domain"
)

type mockCompleter struct {
	text   string
	err    error
	prompt string
}

func (m *mockCompleter) Complete(_ context.Context, prompt string) (string, error) {
	m.prompt = prompt
	return m.text, m.err
}

func TestReply_Passthrough(t *testing.T) {
	model := &mockCompleter{text: "hello there"}
	svc := New(model)

	reply, err := svc.Reply(context.Background(), "hi")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if reply != "hello there" {
		t.Errorf("reply = %q, want %q", reply, "hello there")
	}
	if model.prompt != "hi" {
		t.Errorf("message forwarded as %q, want verbatim", model.prompt)
	}
}

func TestReply_ErrorPropagates(t *testing.T) {
	model := &mockCompleter{err: domain.ErrModelUnavailable}
	svc := New(model)

	_, err := svc.Reply(context.Background(), "hi")
	if !errors.Is(err, domain.ErrModelUnavailable) {
		t.Fatalf("err = %v, want ErrModelUnavailable", err)
	}
}

package intake

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/abhisek/leadvane/internal/llm"
)

func TestParseCommand(t *testing.T) {
	tests := []struct {
		name    string
		output  string
		want    Command
		wantErr bool
	}{
		{
			name:   "add command",
			output: `{"action":"add","name":"John Doe","email":"john@acme.com"}`,
			want:   Command{Action: ActionAdd, Name: "John Doe", Email: "john@acme.com"},
		},
		{
			name:   "delete command without email",
			output: `{"action":"delete","name":"Sarah"}`,
			want:   Command{Action: ActionDelete, Name: "Sarah"},
		},
		{
			name:   "action defaults to add",
			output: `{"name":"Jo","email":"jo@acme.io"}`,
			want:   Command{Action: ActionAdd, Name: "Jo", Email: "jo@acme.io"},
		},
		{
			name:   "fenced output",
			output: "```json\n{\"action\":\"delete\",\"name\":\"Sarah\"}\n```",
			want:   Command{Action: ActionDelete, Name: "Sarah"},
		},
		{name: "not json", output: "Sure! I'll add John for you.", wantErr: true},
		{name: "empty output", output: "", wantErr: true},
		{name: "missing name", output: `{"action":"add","email":"x@y.co"}`, wantErr: true},
		{name: "add without email", output: `{"action":"add","name":"Jo"}`, wantErr: true},
		{name: "blank email on add", output: `{"action":"add","name":"Jo","email":"  "}`, wantErr: true},
		{name: "unknown action", output: `{"action":"upsert","name":"Jo"}`, wantErr: true},
	}

	for _, tt := range tests {
		got, err := ParseCommand(tt.output)
		if tt.wantErr {
			if err == nil {
				t.Errorf("%s: expected error, got %+v", tt.name, got)
				continue
			}
			var parseErr *ParseError
			if !errors.As(err, &parseErr) {
				t.Errorf("%s: expected *ParseError, got %T", tt.name, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("%s: unexpected error: %v", tt.name, err)
			continue
		}
		if got != tt.want {
			t.Errorf("%s: got %+v, want %+v", tt.name, got, tt.want)
		}
	}
}

func TestLLMInterpreter_Interpret(t *testing.T) {
	mock := llm.NewMock(llm.MockReply{Text: `{"action":"add","name":"CTO Sarah","email":"sarah@acme.com"}`})
	interp := NewLLMInterpreter(mock, DefaultInterpreterConfig())

	cmd, err := interp.Interpret(context.Background(), "Add CTO Sarah sarah@acme.com ready to buy")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cmd.Action != ActionAdd || cmd.Name != "CTO Sarah" || cmd.Email != "sarah@acme.com" {
		t.Errorf("unexpected command: %+v", cmd)
	}

	// The model sees the utterance and the output contract.
	if len(mock.Prompts) != 1 {
		t.Fatalf("expected 1 call, got %d", len(mock.Prompts))
	}
	p := mock.Prompts[0]
	if !strings.Contains(p.User, "Add CTO Sarah sarah@acme.com ready to buy") {
		t.Error("utterance missing from prompt")
	}
	if p.Schema == nil || p.Schema.Name != "command-intent" {
		t.Error("command schema not attached to prompt")
	}
}

func TestLLMInterpreter_ProviderFailure(t *testing.T) {
	mock := llm.NewMock(llm.MockReply{Err: &llm.ErrUnavailable{}})
	interp := NewLLMInterpreter(mock, DefaultInterpreterConfig())

	_, err := interp.Interpret(context.Background(), "Add Jo jo@acme.io")
	if err == nil {
		t.Fatal("expected error")
	}
	var unavail *llm.ErrUnavailable
	if !errors.As(err, &unavail) {
		t.Errorf("expected wrapped ErrUnavailable, got: %v", err)
	}
}

func TestLLMInterpreter_GarbageOutput(t *testing.T) {
	mock := llm.NewMock(llm.MockReply{Text: "I could not find a customer in that."})
	interp := NewLLMInterpreter(mock, DefaultInterpreterConfig())

	_, err := interp.Interpret(context.Background(), "mumble mumble")
	var parseErr *ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("expected *ParseError, got: %v", err)
	}
}

package domain

import "testing"

func TestParseAction(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Action
		wantErr bool
	}{
		{
			name:  "valid click",
			input: `{"action": "click", "selector": "text=Sign in", "description": "clicking sign in"}`,
			want:  Action{Type: ActionClick, Selector: "text=Sign in", Description: "clicking sign in"},
		},
		{
			name:  "valid fill",
			input: `{"action": "fill", "selector": "input[type='email']", "value": "test@example.com"}`,
			want:  Action{Type: ActionFill, Selector: "input[type='email']", Value: "test@example.com"},
		},
		{
			name:  "valid navigate",
			input: `{"action": "navigate", "url": "https://shop.test"}`,
			want:  Action{Type: ActionNavigate, URL: "https://shop.test"},
		},
		{
			name:  "valid wait with time",
			input: `{"action": "wait", "time": 2.5}`,
			want:  Action{Type: ActionWait, Time: 2.5},
		},
		{
			name:  "check with empty text is a page view",
			input: `{"action": "check", "text": ""}`,
			want:  Action{Type: ActionCheck},
		},
		{
			name:  "type is normalized",
			input: `{"action": " Click ", "selector": "#go"}`,
			want:  Action{Type: ActionClick, Selector: "#go"},
		},
		{
			name:    "click without selector rejected",
			input:   `{"action": "click"}`,
			wantErr: true,
		},
		{
			name:    "fill without selector rejected",
			input:   `{"action": "fill", "value": "x"}`,
			wantErr: true,
		},
		{
			name:    "navigate without url rejected",
			input:   `{"action": "navigate"}`,
			wantErr: true,
		},
		{
			name:    "unrecognized type rejected",
			input:   `{"action": "hover", "selector": "#x"}`,
			wantErr: true,
		},
		{
			name:    "not JSON",
			input:   `click the button`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseAction([]byte(tt.input))
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error, got %+v", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %+v, want %+v", got, tt.want)
			}
		})
	}
}

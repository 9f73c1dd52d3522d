package httpapi

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"go.opentelemetry.io/otel/attribute"
)

func TestShouldCreateHTTPAPISpan(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want bool
	}{
		{name: "handler span", in: "httpapi.Handler.GetLadder", want: true},
		{name: "middleware span", in: "httpapi.RequestLogging", want: false},
		{name: "helper span", in: "httpapi.writeError", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := shouldCreateHTTPAPISpan(tt.in)
			if got != tt.want {
				t.Fatalf("shouldCreateHTTPAPISpan(%q)=%v want=%v", tt.in, got, tt.want)
			}
		})
	}
}

func TestHandlerSpanAttributes(t *testing.T) {
	tests := []struct {
		name   string
		target string
		params map[string]string
		want   []attribute.KeyValue
	}{
		{
			name:   "club id route",
			target: "/v1/club-ids/club-1/matches",
			params: map[string]string{"clubID": "club-1"},
			want:   []attribute.KeyValue{attribute.String("ladder.club_id", "club-1")},
		},
		{
			name:   "match route",
			target: "/v1/matches/m-9",
			params: map[string]string{"matchID": "m-9"},
			want:   []attribute.KeyValue{attribute.String("ladder.match_id", "m-9")},
		},
		{
			name:   "club admin check query",
			target: "/v1/auth/club-admin/check?club_id=club-2",
			want:   []attribute.KeyValue{attribute.String("ladder.club_id", "club-2")},
		},
		{
			name:   "no identifiers",
			target: "/v1/clubs",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.target, nil)
			for k, v := range tt.params {
				req.SetPathValue(k, v)
			}

			got := handlerSpanAttributes(req)
			if len(got) != len(tt.want) {
				t.Fatalf("got %v want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Fatalf("attr %d: got %v want %v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

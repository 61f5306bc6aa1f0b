package respond

import (
	"errors"
	"strings"
	"testing"
)

func TestSanitizeError(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		want    string
		notWant string
	}{
		{
			name: "nil error",
			err:  nil,
			want: "",
		},
		{
			name:    "postgres URL password",
			err:     errors.New(`connect "postgres://app:s3cret@db:5432/articles": refused`),
			want:    "postgres://app:****@db:5432",
			notWant: "s3cret",
		},
		{
			name:    "redis URL password without user",
			err:     errors.New("redis://:hunter2@cache:6379: i/o timeout"),
			want:    "redis://:****@cache:6379",
			notWant: "hunter2",
		},
		{
			name:    "keyword DSN password",
			err:     errors.New("parse config: host=db password=topsecret dbname=articles"),
			want:    "password=****",
			notWant: "topsecret",
		},
		{
			name: "plain error unchanged",
			err:  errors.New("sql: no rows in result set"),
			want: "sql: no rows in result set",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SanitizeError(tt.err)
			if tt.want != "" && !strings.Contains(got, tt.want) {
				t.Errorf("SanitizeError() = %q, want substring %q", got, tt.want)
			}
			if tt.notWant != "" && strings.Contains(got, tt.notWant) {
				t.Errorf("SanitizeError() = %q leaked %q", got, tt.notWant)
			}
		})
	}
}

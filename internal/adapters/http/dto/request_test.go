package dto_test

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/jsamuelsen11/member-roster/internal/adapters/http/dto"
	"github.com/jsamuelsen11/member-roster/internal/domain"
)

func TestMemberRequest_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		body    string
		wantErr bool
	}{
		{name: "name present", body: `{"name":"Anja"}`, wantErr: false},
		{name: "empty name left to domain", body: `{"name":""}`, wantErr: false},
		{name: "missing name", body: `{}`, wantErr: true},
		{name: "null name", body: `{"name":null}`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var req dto.MemberRequest
			if err := json.Unmarshal([]byte(tt.body), &req); err != nil {
				t.Fatalf("unmarshal: %v", err)
			}

			err := req.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, domain.ErrValidation) {
				t.Errorf("Validate() error = %v, want ErrValidation", err)
			}
		})
	}
}

package session

import (
	"testing"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/testutil"
)

func TestMoveRequest_Validation(t *testing.T) {
	tests := []struct {
		name    string
		req     MoveRequest
		wantErr string
	}{
		{"corners", mv(0, 0, 7, 7), ""},
		{"file too large", mv(8, 0, 0, 0), "FromFile must be at most 7"},
		{"negative rank", mv(0, 0, 0, -1), "ToRank must be at least 0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validate.Struct(tt.req)
			if tt.wantErr == "" {
				testutil.AssertNoError(t, err)
				return
			}
			if err == nil {
				t.Fatalf("Struct(%+v) = nil, want error", tt.req)
			}
			testutil.AssertContains(t, validationDetails(err), tt.wantErr)
		})
	}
}

func TestPromotionRequest_Validation(t *testing.T) {
	err := validate.Struct(PromotionRequest{Colour: "green"})
	if err == nil {
		t.Fatal("Struct() = nil, want error")
	}
	details := validationDetails(err)
	testutil.AssertContains(t, details, "Colour must be one of [white black]")
	testutil.AssertContains(t, details, "Role is required")

	colour, role := PromotionRequest{Colour: "black", Role: "bishop"}.parse()
	testutil.AssertEqual(t, colour, chess.Black)
	testutil.AssertEqual(t, role, chess.Bishop)
}

package session

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/lgbarn/chessrules-go/internal/chess"
)

var validate = validator.New()

// MoveRequest asks for the unit on (FromFile, FromRank) to move to (ToFile, ToRank).
type MoveRequest struct {
	FromFile int `validate:"min=0,max=7"`
	FromRank int `validate:"min=0,max=7"`
	ToFile   int `validate:"min=0,max=7"`
	ToRank   int `validate:"min=0,max=7"`
}

func (r MoveRequest) squares() (chess.Square, chess.Square) {
	return chess.Square{File: r.FromFile, Rank: r.FromRank}, chess.Square{File: r.ToFile, Rank: r.ToRank}
}

// PromotionRequest configures the promotion role of one colour. Role names
// are lower case; King and Pawn pass validation and are rejected by the
// rules engine.
type PromotionRequest struct {
	Colour string `validate:"required,oneof=white black"`
	Role   string `validate:"required,oneof=king queen bishop knight rook pawn"`
}

func (r PromotionRequest) parse() (chess.Colour, chess.Role) {
	colour := chess.White
	if r.Colour == "black" {
		colour = chess.Black
	}
	role, _ := chess.ParseRole(r.Role)
	return colour, role
}

// validationDetails flattens validator errors into one readable line.
func validationDetails(err error) string {
	errs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err.Error()
	}
	var details strings.Builder
	for _, fe := range errs {
		if details.Len() > 0 {
			details.WriteString("; ")
		}
		switch fe.Tag() {
		case "required":
			fmt.Fprintf(&details, "%s is required", fe.Field())
		case "oneof":
			fmt.Fprintf(&details, "%s must be one of [%s]", fe.Field(), fe.Param())
		case "min":
			if fe.Type().Kind() == reflect.String {
				fmt.Fprintf(&details, "%s must be at least %s characters", fe.Field(), fe.Param())
			} else {
				fmt.Fprintf(&details, "%s must be at least %s", fe.Field(), fe.Param())
			}
		case "max":
			if fe.Type().Kind() == reflect.String {
				fmt.Fprintf(&details, "%s must be at most %s characters", fe.Field(), fe.Param())
			} else {
				fmt.Fprintf(&details, "%s must be at most %s", fe.Field(), fe.Param())
			}
		default:
			fmt.Fprintf(&details, "%s failed %s validation", fe.Field(), fe.Tag())
		}
	}
	return details.String()
}

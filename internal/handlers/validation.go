package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"vizigoBack/internal/models"
)

// ValidationIssue describes one rejected field of a request body.
type ValidationIssue struct {
	Loc  []string `json:"loc"`
	Msg  string   `json:"msg"`
	Type string   `json:"type"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// report fields by their JSON names
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	if err := v.RegisterValidation("isodate", func(fl validator.FieldLevel) bool {
		_, err := models.ParseDate(fl.Field().String())
		return err == nil
	}); err != nil {
		panic(err)
	}
	return v
}

// decodeAndValidate decodes the JSON body of r into dst and checks its
// validate tags. It returns nil when the body is acceptable.
func decodeAndValidate(r *http.Request, dst interface{}) []ValidationIssue {
	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(dst); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) && typeErr.Field != "" {
			return []ValidationIssue{{
				Loc:  []string{"body", typeErr.Field},
				Msg:  fmt.Sprintf("expected %s, got %s", typeErr.Type, typeErr.Value),
				Type: "type_error",
			}}
		}
		return []ValidationIssue{{
			Loc:  []string{"body"},
			Msg:  "invalid JSON body: " + err.Error(),
			Type: "json_invalid",
		}}
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return []ValidationIssue{{
			Loc:  []string{"body"},
			Msg:  "invalid JSON body: unexpected data after the top-level value",
			Type: "json_invalid",
		}}
	}

	err := validate.Struct(dst)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return []ValidationIssue{{Loc: []string{"body"}, Msg: err.Error(), Type: "value_error"}}
	}

	issues := make([]ValidationIssue, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		issues = append(issues, issueFor(fe))
	}
	return issues
}

func issueFor(fe validator.FieldError) ValidationIssue {
	issue := ValidationIssue{Loc: []string{"body", fe.Field()}}
	switch fe.Tag() {
	case "required":
		issue.Msg = "field required"
		issue.Type = "missing"
	case "isodate":
		issue.Msg = "invalid date format, expected YYYY-MM-DD"
		issue.Type = "date_parsing"
	default:
		issue.Msg = fmt.Sprintf("failed on the %q rule", fe.Tag())
		issue.Type = "value_error"
	}
	return issue
}

package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"jobly/internal/core/domain/model/company"
	"jobly/internal/core/domain/model/job"
	"jobly/internal/pkg/errs"
)

type jobResponse struct {
	ID            int64   `json:"id"`
	Title         string  `json:"title"`
	Salary        *int    `json:"salary"`
	Equity        *string `json:"equity"`
	CompanyHandle string  `json:"companyHandle"`
}

func toJobResponse(j *job.Job) jobResponse {
	resp := jobResponse{
		ID:            int64(j.ID()),
		Title:         j.Title(),
		Salary:        j.Salary(),
		CompanyHandle: j.CompanyHandle().String(),
	}
	if e := j.Equity(); e != nil {
		s := e.String()
		resp.Equity = &s
	}
	return resp
}

func toJobResponses(list []*job.Job) []jobResponse {
	out := make([]jobResponse, len(list))
	for i, j := range list {
		out[i] = toJobResponse(j)
	}
	return out
}

type companyResponse struct {
	Handle       string  `json:"handle"`
	Name         string  `json:"name"`
	Description  string  `json:"description"`
	NumEmployees *int    `json:"numEmployees"`
	LogoURL      *string `json:"logoUrl"`
}

type companyDetailResponse struct {
	companyResponse
	Jobs []jobResponse `json:"jobs"`
}

func toCompanyResponse(c *company.Company) companyResponse {
	return companyResponse{
		Handle:       c.Handle().String(),
		Name:         c.Name(),
		Description:  c.Description(),
		NumEmployees: c.NumEmployees(),
		LogoURL:      c.LogoURL(),
	}
}

type deletedResponse struct {
	Deleted string `json:"deleted"`
}

type healthCheckResponse struct {
	Component string     `json:"component"`
	Status    string     `json:"status"`
	CheckedAt *time.Time `json:"checkedAt,omitempty"`
	Error     string     `json:"error,omitempty"`
}

type healthResponse struct {
	Status string                `json:"status"`
	Checks []healthCheckResponse `json:"checks"`
}

type newJobRequest struct {
	Title         string       `json:"title"`
	Salary        *int         `json:"salary"`
	Equity        *json.Number `json:"equity"`
	CompanyHandle string       `json:"companyHandle"`
}

type newCompanyRequest struct {
	Handle       string  `json:"handle"`
	Name         string  `json:"name"`
	Description  string  `json:"description"`
	NumEmployees *int    `json:"numEmployees"`
	LogoURL      *string `json:"logoUrl"`
}

// parseEquity keeps the decimal as written ("0.40" stays "0.40"); exponent
// forms go through float formatting.
func parseEquity(n json.Number) (job.Equity, error) {
	if e, err := job.ParseEquity(n.String()); err == nil {
		return e, nil
	}
	f, err := n.Float64()
	if err != nil {
		return job.Equity{}, errs.NewValueIsInvalidErrorWithCause("equity", err)
	}
	return job.EquityFromFloat(f)
}

// patchFields is a decoded PATCH body. A key mapped to JSON null is present.
// Keys keep the order they had in the request.
type patchFields struct {
	values map[string]json.RawMessage
	order  []string
}

func (f *patchFields) UnmarshalJSON(b []byte) error {
	if isNull(b) {
		return nil
	}

	dec := json.NewDecoder(bytes.NewReader(b))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return errors.New("patch body must be a JSON object")
	}

	f.values = make(map[string]json.RawMessage)
	for dec.More() {
		if tok, err = dec.Token(); err != nil {
			return err
		}
		key := tok.(string)
		var raw json.RawMessage
		if err = dec.Decode(&raw); err != nil {
			return err
		}
		if _, seen := f.values[key]; !seen {
			f.order = append(f.order, key)
		}
		f.values[key] = raw
	}
	_, err = dec.Token()
	return err
}

func isNull(raw json.RawMessage) bool {
	return string(bytes.TrimSpace(raw)) == "null"
}

func decodeField[T any](fields patchFields, key string) (T, error) {
	var v T
	if err := json.Unmarshal(fields.values[key], &v); err != nil {
		return v, errs.NewValueIsInvalidErrorWithCause(key, err)
	}
	return v, nil
}

func unknownField(key string) error {
	return errs.NewValueIsInvalidErrorWithCause(key, fmt.Errorf("%q cannot be updated", key))
}

func toJobPatch(fields patchFields) (job.Patch, error) {
	var patch job.Patch
	for _, key := range fields.order {
		var err error
		switch key {
		case job.FieldTitle:
			var title string
			if title, err = decodeField[string](fields, key); err == nil {
				err = patch.SetTitle(title)
			}
		case job.FieldSalary:
			var salary *int
			if salary, err = decodeField[*int](fields, key); err == nil {
				err = patch.SetSalary(salary)
			}
		case job.FieldEquity:
			var equity *job.Equity
			if equity, err = decodePatchEquity(fields, key); err == nil {
				patch.SetEquity(equity)
			}
		default:
			err = unknownField(key)
		}
		if err != nil {
			return job.Patch{}, err
		}
	}
	return patch, nil
}

func decodePatchEquity(fields patchFields, key string) (*job.Equity, error) {
	if isNull(fields.values[key]) {
		return nil, nil
	}
	n, err := decodeField[json.Number](fields, key)
	if err != nil {
		return nil, err
	}
	e, err := parseEquity(n)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func toCompanyPatch(fields patchFields) (company.Patch, error) {
	var patch company.Patch
	for _, key := range fields.order {
		var err error
		switch key {
		case company.FieldName:
			var name string
			if name, err = decodeField[string](fields, key); err == nil {
				err = patch.SetName(name)
			}
		case company.FieldDescription:
			var description string
			if description, err = decodeField[string](fields, key); err == nil {
				patch.SetDescription(description)
			}
		case company.FieldNumEmployees:
			var n *int
			if n, err = decodeField[*int](fields, key); err == nil {
				err = patch.SetNumEmployees(n)
			}
		case company.FieldLogoURL:
			var url *string
			if url, err = decodeField[*string](fields, key); err == nil {
				patch.SetLogoURL(url)
			}
		default:
			err = unknownField(key)
		}
		if err != nil {
			return company.Patch{}, err
		}
	}
	return patch, nil
}

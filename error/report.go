package error

import (
	"encoding/json"

	"gopkg.in/yaml.v3"

	"github.com/next-trace/scg-errkit/contract"
	"github.com/next-trace/scg-errkit/typeid"
)

// Report is a flat, transport-friendly view of a cause chain.
type Report struct {
	Message string `json:"message" yaml:"message"`
	Links   []Link `json:"links" yaml:"links"`
}

// Link describes one error of a chain.
type Link struct {
	Type        string         `json:"type" yaml:"type"`
	Description string         `json:"description" yaml:"description"`
	Detail      string         `json:"detail,omitempty" yaml:"detail,omitempty"`
	Code        string         `json:"code,omitempty" yaml:"code,omitempty"`
	Context     map[string]any `json:"context,omitempty" yaml:"context,omitempty"`
}

// NewReport flattens err's chain, outermost first. A nil err gives an empty Report.
func NewReport(err contract.Error) Report {
	if isNil(err) {
		return Report{}
	}

	r := Report{Message: Message(err)}

	for _, link := range Walk(err) {
		l := Link{
			Type:        typeid.Runtime(link).String(),
			Description: link.Description(),
		}

		if d, ok := link.Detail(); ok {
			l.Detail = d
		}

		if e, ok := link.(*Error); ok {
			l.Code = e.code
			l.Context = e.Context()
		}

		r.Links = append(r.Links, l)
	}

	return r
}

func (r Report) JSON() ([]byte, error) { return json.MarshalIndent(r, "", "  ") }

func (r Report) YAML() ([]byte, error) { return yaml.Marshal(r) }

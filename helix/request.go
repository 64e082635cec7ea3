package helix

import (
	"net/url"
	"strconv"
	"strings"
)

type Request struct {
	Method      string
	Path        string
	Query       Params
	Body        any
	Bucket      string
	AccessToken string
}

type Param struct {
	Key   string
	Value string
}

// Params is an ordered multi-value query parameter list. Repeated keys
// are legal and keep their insertion order.
type Params []Param

func (p *Params) Add(key, value string) {
	*p = append(*p, Param{Key: key, Value: value})
}

func (p *Params) AddInt(key string, value int) {
	p.Add(key, strconv.Itoa(value))
}

func (p *Params) AddAll(key string, values []string) {
	for _, value := range values {
		p.Add(key, value)
	}
}

func (p *Params) AddOpt(key, value string) {
	if value != "" {
		p.Add(key, value)
	}
}

func (p *Params) AddOptInt(key string, value *int) {
	if value != nil {
		p.AddInt(key, *value)
	}
}

func (p Params) Encode() string {
	if len(p) == 0 {
		return ""
	}

	var sb strings.Builder

	for i, param := range p {
		if i > 0 {
			sb.WriteByte('&')
		}

		sb.WriteString(url.QueryEscape(param.Key))
		sb.WriteByte('=')
		sb.WriteString(url.QueryEscape(param.Value))
	}

	return sb.String()
}

// Int is a helper to pass optional integer parameters.
func Int(v int) *int {
	return &v
}

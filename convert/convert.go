package convert

import (
	"io"

	"github.com/abx-format/go-abx/abx"
	"github.com/abx-format/go-abx/classify"
	"github.com/abx-format/go-abx/stream"
)

// Option configures a conversion.
type Option func(*config)

type config struct {
	preserveWhitespace bool
	policy             *classify.Policy
	warn               stream.WarnFunc
	trace              func(*stream.Event)
}

// PreserveWhitespace controls whether ignorable whitespace is encoded
// (the default) or dropped.
func PreserveWhitespace(v bool) Option {
	return func(c *config) { c.preserveWhitespace = v }
}

// WithPolicy sets the attribute classification policy.
func WithPolicy(p *classify.Policy) Option {
	return func(c *config) { c.policy = p }
}

// WithWarningFunc sets the warning callback used by Reader's XML
// source.
func WithWarningFunc(fn stream.WarnFunc) Option {
	return func(c *config) { c.warn = fn }
}

// WithTrace sets a hook called with each event before it is encoded.
func WithTrace(fn func(*stream.Event)) Option {
	return func(c *config) { c.trace = fn }
}

func newConfig(opts []Option) *config {
	cfg := &config{preserveWhitespace: true}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// Reader converts the XML document in r to ABX written to w.
func Reader(r io.Reader, w io.Writer, opts ...Option) error {
	cfg := newConfig(opts)
	var srcOpts []stream.SourceOption
	if cfg.warn != nil {
		srcOpts = append(srcOpts, stream.WithWarningFunc(cfg.warn))
	}
	return convert(stream.NewXMLSource(r, srcOpts...), w, cfg)
}

// Events converts the event stream src to ABX written to w.
func Events(src stream.Source, w io.Writer, opts ...Option) error {
	return convert(src, w, newConfig(opts))
}

func convert(src stream.Source, w io.Writer, cfg *config) error {
	var sOpts []abx.SerializerOption
	if cfg.policy != nil {
		sOpts = append(sOpts, abx.WithPolicy(cfg.policy))
	}
	s := abx.NewSerializer(w, sOpts...)
	if err := s.StartDocument(); err != nil {
		return err
	}
	for {
		ev, err := src.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return err
		}
		if cfg.trace != nil {
			cfg.trace(ev)
		}
		if err := writeEvent(s, ev, cfg); err != nil {
			return err
		}
	}
	return s.EndDocument()
}

func writeEvent(s *abx.Serializer, ev *stream.Event, cfg *config) error {
	switch ev.Type {
	case stream.EventStartTag:
		return s.StartTag(ev.Name)
	case stream.EventEndTag:
		return s.EndTag(ev.Name)
	case stream.EventAttr:
		return s.Attr(ev.Name, ev.Value)
	case stream.EventText:
		return s.Text(ev.Text)
	case stream.EventCDSect:
		return s.CDSect(ev.Text)
	case stream.EventComment:
		return s.Comment(ev.Text)
	case stream.EventProcInst:
		return s.ProcInst(ev.Text)
	case stream.EventDocDecl:
		return s.DocDecl(ev.Text)
	case stream.EventEntityRef:
		return s.EntityRef(ev.Text)
	case stream.EventIgnorableWhitespace:
		if !cfg.preserveWhitespace {
			return nil
		}
		return s.IgnorableWhitespace(ev.Text)
	default:
		return nil
	}
}

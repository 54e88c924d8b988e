package codec

import (
	"errors"
	"strconv"

	featstore "github.com/reoring/featstore"
	"github.com/reoring/featstore/internal/engine"
	"github.com/reoring/featstore/internal/numfmt"
)

// resolver binds scanned entries to a schema. It is shared by every codec so
// that all encodings accept and reject exactly the same documents.
type resolver struct {
	s    *featstore.Schema
	opt  featstore.ParseOpt
	doc  featstore.Document
	pres featstore.PresenceMap
	errs featstore.Issues
	warn featstore.Issues
}

// errStop aborts resolution after the first error in fail-fast mode.
var errStop = errors.New("stop")

func resolve(s *featstore.Schema, entries []engine.Entry, opt featstore.ParseOpt) (featstore.Decoded[featstore.Document], error) {
	r := &resolver{s: s, opt: opt, doc: s.Defaults(), pres: featstore.PresenceMap{}}
	err := r.run(entries)
	if err != nil && !errors.Is(err, errStop) {
		return featstore.Decoded[featstore.Document]{}, err
	}
	for _, f := range s.Fields() {
		if !r.pres.Seen(f.Pointer()) {
			r.pres[f.Pointer()] = featstore.PresenceDefaultApplied
		}
	}
	out := featstore.Decoded[featstore.Document]{Presence: r.pres, Warnings: r.warn}
	if len(r.errs) > 0 {
		return out, r.errs
	}
	out.Value = r.doc
	return out, nil
}

func (r *resolver) run(entries []engine.Entry) error {
	if r.opt.OnDuplicate != featstore.Ignore {
		for _, d := range engine.FindDuplicates(entries) {
			iss := featstore.NewIssueWith("/"+d.Key, featstore.CodeDuplicateField, "", d.Line, nil,
				map[string]string{"first": lineText(d.FirstLine)})
			if err := r.report(iss, r.opt.OnDuplicate == featstore.Error); err != nil {
				return err
			}
		}
	}
	for _, e := range entries {
		var err error
		switch e.Key {
		case featstore.FieldFormat:
			err = r.format(e)
		case featstore.FieldName:
			err = r.name(e)
		default:
			err = r.field(e)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// report records an issue as an error (fatal) or a warning. In fail-fast mode
// the first error stops resolution.
func (r *resolver) report(iss featstore.Issue, fatal bool) error {
	if !fatal {
		r.warn = featstore.AppendIssues(r.warn, iss)
		return nil
	}
	r.errs = featstore.AppendIssues(r.errs, iss)
	if r.opt.FailFast {
		return errStop
	}
	return nil
}

func (r *resolver) format(e engine.Entry) error {
	want := r.s.FormatVersion()
	if want == 0 {
		return r.unknown(e)
	}
	if e.Literal != engine.LitBare {
		return r.report(featstore.NewIssueWith("/"+e.Key, featstore.CodeInvalidType, e.Raw, e.Line, nil,
			map[string]string{"expected": "int"}), true)
	}
	v, err := numfmt.ParseInt(e.Raw, 32)
	if err != nil {
		return r.report(featstore.NewIssueWith("/"+e.Key, featstore.CodeInvalidType, e.Raw, e.Line, err,
			map[string]string{"expected": "int"}), true)
	}
	if v > int64(want) || v <= 0 {
		return r.report(featstore.NewIssueWith("/", featstore.CodeUnsupportedFormat, e.Raw, e.Line, nil,
			map[string]string{"expected": strconv.Itoa(want)}), true)
	}
	return nil
}

func (r *resolver) name(e engine.Entry) error {
	if e.Literal == engine.LitBool || e.Raw != r.s.Name() {
		return r.report(featstore.NewIssueWith("/", featstore.CodeNameMismatch, e.Raw, e.Line, nil,
			map[string]string{"expected": r.s.Name()}), true)
	}
	return nil
}

func (r *resolver) unknown(e engine.Entry) error {
	iss := featstore.NewIssueWith("/"+e.Key, featstore.CodeUnknownField, e.Raw, e.Line, nil,
		map[string]string{"schema": r.s.Name()})
	return r.report(iss, r.opt.Unknown != featstore.UnknownStrip)
}

func (r *resolver) field(e engine.Entry) error {
	f, ok := r.s.Field(e.Key)
	if !ok {
		return r.unknown(e)
	}
	v, iss, ok := convert(f, e)
	if !ok {
		return r.report(iss, true)
	}
	doc, err := r.doc.Set(f.Name, v)
	if err != nil {
		if got, ok := featstore.AsIssues(err); ok && len(got) > 0 {
			it := got[0]
			it.Raw, it.Line = e.Raw, e.Line
			return r.report(it, true)
		}
		return err
	}
	r.doc = doc
	r.pres[f.Pointer()] = featstore.PresenceSeen
	return nil
}

// convert turns the raw text of one entry into a Value of the field's kind.
func convert(f featstore.FieldSpec, e engine.Entry) (featstore.Value, featstore.Issue, bool) {
	mismatch := func(cause error) (featstore.Value, featstore.Issue, bool) {
		return featstore.Value{}, featstore.NewIssueWith(f.Pointer(), featstore.CodeInvalidType, e.Raw, e.Line, cause,
			map[string]string{"expected": f.Kind.String()}), false
	}
	numErr := func(err error) (featstore.Value, featstore.Issue, bool) {
		var re *numfmt.RangeError
		if errors.As(err, &re) {
			return featstore.Value{}, featstore.NewIssueWith(f.Pointer(), featstore.CodeOverflow, e.Raw, e.Line, err,
				map[string]string{"bits": strconv.Itoa(re.Bits)}), false
		}
		return mismatch(err)
	}

	switch f.Kind {
	case featstore.KindText:
		if e.Literal == engine.LitBool {
			return mismatch(nil)
		}
		return featstore.Text(e.Raw), featstore.Issue{}, true
	case featstore.KindBool:
		switch e.Literal {
		case engine.LitBool:
			return featstore.Bool(e.Raw == "true"), featstore.Issue{}, true
		case engine.LitQuoted:
			return mismatch(nil)
		}
		b, err := numfmt.ParseBool(e.Raw)
		if err != nil {
			return numErr(err)
		}
		return featstore.Bool(b), featstore.Issue{}, true
	}

	if e.Literal != engine.LitBare {
		return mismatch(nil)
	}
	switch f.Kind {
	case featstore.KindInt:
		v, err := numfmt.ParseInt(e.Raw, bitsOf(f))
		if err != nil {
			return numErr(err)
		}
		return featstore.Int(v), featstore.Issue{}, true
	case featstore.KindFloat:
		v, err := numfmt.ParseFloat(e.Raw, bitsOf(f))
		if err != nil {
			return numErr(err)
		}
		return featstore.Float(v), featstore.Issue{}, true
	}
	return mismatch(nil)
}

func bitsOf(f featstore.FieldSpec) int {
	if f.Bits == 0 {
		return 64
	}
	return f.Bits
}

func lineText(n int) string {
	if n <= 0 {
		return ""
	}
	return strconv.Itoa(n)
}

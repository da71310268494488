package recfmt

import (
	"iter"
)

// CreateSeq creates one result per record as records arrive. Each record is
// handled independently: an error for one item does not stop the sequence
// unless the consumer stops ranging.
func (r *Registry) CreateSeq(f Format, seq iter.Seq[Record]) iter.Seq2[*Result, error] {
	return func(yield func(*Result, error) bool) {
		for rec := range seq {
			if !yield(r.Create(f, rec)) {
				return
			}
		}
	}
}

// CreateAll creates one result per record. The returned slices are aligned
// with records; for each index exactly one of results[i] and errs[i] is
// non-nil.
func (r *Registry) CreateAll(f Format, records []Record) (results []*Result, errs []error) {
	results = make([]*Result, len(records))
	errs = make([]error, len(records))
	i := 0
	for res, err := range r.CreateSeq(f, Records(records)) {
		results[i], errs[i] = res, err
		i++
	}
	return results, errs
}

// Records adapts a slice to an iterator.
func Records(records []Record) iter.Seq[Record] {
	return func(yield func(Record) bool) {
		for _, rec := range records {
			if !yield(rec) {
				return
			}
		}
	}
}

// Chan adapts a channel of records to an iterator.
func Chan(ch <-chan Record) iter.Seq[Record] {
	return func(yield func(Record) bool) {
		for rec := range ch {
			if !yield(rec) {
				return
			}
		}
	}
}

// StringifyAll renders each result, isolating failures per item. The
// returned slices are aligned with results.
func StringifyAll(results []*Result) (texts []string, errs []error) {
	texts = make([]string, len(results))
	errs = make([]error, len(results))
	for i, res := range results {
		if res == nil {
			continue
		}
		texts[i], errs[i] = res.Stringify()
	}
	return texts, errs
}

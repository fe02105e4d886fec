// Package export extracts the already-endorsed set from the NationStates nations dump.
package export

import (
	"encoding/xml"
	"errors"
	"io"
	"strings"

	"go.trai.ch/endotarter/internal/core/domain"
	"go.trai.ch/zerr"
)

const (
	nationElement      = "NATION"
	endorsersSeparator = ","
)

// nationRecord is the subset of a dump <NATION> element the reader needs.
// Pointer fields distinguish an absent element from an empty one.
type nationRecord struct {
	Name         *string `xml:"NAME"`
	Region       *string `xml:"REGION"`
	Endorsements string  `xml:"ENDORSEMENTS"`
}

// Extraction is the result of one scan over the dump.
type Extraction struct {
	// Endorsed holds the region's nations that the operator has endorsed.
	Endorsed domain.IdentifierSet
	// Scanned is the number of <NATION> records decoded.
	Scanned int
	// RegionRecords is the number of records that belonged to the region.
	RegionRecords int
	// StoppedEarly reports whether the scan ended at the end of the region's run.
	StoppedEarly bool
}

// Reader streams the dump one <NATION> record at a time.
//
// Precondition: the dump lists all nations of a region as one contiguous run.
// Relying on it, the reader stops at the first record after the region's run.
// Set FullScan for sources that do not guarantee contiguous grouping; every record
// is then inspected and matching records are collected wherever they appear.
type Reader struct {
	FullScan bool
}

// NewReader creates a Reader.
func NewReader(fullScan bool) *Reader {
	return &Reader{FullScan: fullScan}
}

// ExtractEndorsed returns the nations of region whose endorsers include self.
// region and self must be canonical.
func (r *Reader) ExtractEndorsed(doc io.Reader, region, self domain.Identifier) (domain.IdentifierSet, error) {
	res, err := r.Extract(doc, region, self)
	if err != nil {
		return nil, err
	}
	return res.Endorsed, nil
}

// Extract scans doc and reports the endorsed set together with scan statistics.
// Only the record being decoded is held in memory.
func (r *Reader) Extract(doc io.Reader, region, self domain.Identifier) (Extraction, error) {
	res := Extraction{Endorsed: domain.NewIdentifierSet()}
	dec := xml.NewDecoder(doc)
	insideRegion := false

	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			return res, nil
		}
		if err != nil {
			return Extraction{}, malformed(err, res.Scanned)
		}

		start, ok := tok.(xml.StartElement)
		if !ok || start.Name.Local != nationElement {
			continue
		}

		var rec nationRecord
		if err := dec.DecodeElement(&rec, &start); err != nil {
			return Extraction{}, malformed(err, res.Scanned)
		}
		res.Scanned++

		if rec.Name == nil || rec.Region == nil {
			return Extraction{}, malformed(zerr.New("nation record without NAME or REGION"), res.Scanned)
		}

		if domain.Canonical(*rec.Region) != region {
			if insideRegion && !r.FullScan {
				res.StoppedEarly = true
				return res, nil
			}
			continue
		}

		insideRegion = true
		res.RegionRecords++

		if nation, ok := endorsedBy(rec, self); ok {
			res.Endorsed.Add(nation)
		}
	}
}

// endorsedBy reports the record's canonical name if self appears among its endorsers.
// A nation never counts as endorsed by itself.
func endorsedBy(rec nationRecord, self domain.Identifier) (domain.Identifier, bool) {
	if strings.TrimSpace(rec.Endorsements) == "" {
		return "", false
	}

	nation := domain.Canonical(*rec.Name)
	if nation == self {
		return "", false
	}

	for _, endorser := range strings.Split(rec.Endorsements, endorsersSeparator) {
		if domain.Canonical(endorser) == self {
			return nation, true
		}
	}
	return "", false
}

func malformed(cause error, scanned int) error {
	return zerr.With(errors.Join(domain.ErrMalformedExport, cause), "records_scanned", scanned)
}

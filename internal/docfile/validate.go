package docfile

import (
	"fmt"

	"github.com/jthomassen/roadline/internal/domain"
)

// Validate checks structural integrity of a decoded document DTO and
// returns every problem found rather than stopping at the first.
func Validate(doc *documentDTO) []error {
	var errs []error

	rowIDs := map[string]bool{domain.CanvasRowID: true}
	errs = append(errs, validateTopics(doc.Topics, rowIDs)...)
	errs = append(errs, validateObjects(doc.Objects, rowIDs)...)
	return errs
}

func validateTopics(topics []topicDTO, rowIDs map[string]bool) []error {
	var errs []error
	for i, t := range topics {
		prefix := fmt.Sprintf("topics[%d]", i)
		switch {
		case t.ID == "":
			errs = append(errs, fmt.Errorf("%s.id is required", prefix))
		case rowIDs[t.ID]:
			errs = append(errs, fmt.Errorf("%s.id: duplicate id %q", prefix, t.ID))
		default:
			rowIDs[t.ID] = true
		}
		for j, d := range t.Deliverables {
			dp := fmt.Sprintf("%s.deliverables[%d]", prefix, j)
			switch {
			case d.ID == "":
				errs = append(errs, fmt.Errorf("%s.id is required", dp))
			case rowIDs[d.ID]:
				errs = append(errs, fmt.Errorf("%s.id: duplicate id %q", dp, d.ID))
			default:
				rowIDs[d.ID] = true
			}
		}
	}
	return errs
}

func validateObjects(objects []objectDTO, rowIDs map[string]bool) []error {
	var errs []error
	objectIDs := make(map[string]bool, len(objects))
	for i, o := range objects {
		prefix := fmt.Sprintf("objects[%d]", i)
		switch {
		case o.ID == "":
			errs = append(errs, fmt.Errorf("%s.id is required", prefix))
		case objectIDs[o.ID]:
			errs = append(errs, fmt.Errorf("%s.id: duplicate id %q", prefix, o.ID))
		default:
			objectIDs[o.ID] = true
		}
		if !domain.ValidKinds[domain.Kind(o.Kind)] {
			errs = append(errs, fmt.Errorf("%s.kind: invalid value %q", prefix, o.Kind))
		}
		if o.RowID != "" && !rowIDs[o.RowID] {
			errs = append(errs, fmt.Errorf("%s.row_id: unknown row %q", prefix, o.RowID))
		}
		if o.TargetRowID != "" && !rowIDs[o.TargetRowID] {
			errs = append(errs, fmt.Errorf("%s.target_row_id: unknown row %q", prefix, o.TargetRowID))
		}
	}
	// Attachment references resolve against the full object set, so check
	// them only after every id has been seen.
	for i, o := range objects {
		prefix := fmt.Sprintf("objects[%d]", i)
		for field, ref := range map[string]string{
			"link_source_id":      o.LinkSourceID,
			"link_target_id":      o.LinkTargetID,
			"connector_source_id": o.ConnectorSourceID,
			"connector_target_id": o.ConnectorTargetID,
		} {
			if ref != "" && !objectIDs[ref] {
				errs = append(errs, fmt.Errorf("%s.%s: unknown object %q", prefix, field, ref))
			}
		}
	}
	return errs
}

package chi

import (
	"time"

	domcol "github.com/kailas-cloud/vecdex-console/internal/domain/collection"
	domdoc "github.com/kailas-cloud/vecdex-console/internal/domain/document"
	"github.com/kailas-cloud/vecdex-console/internal/domain/preset"
	"github.com/kailas-cloud/vecdex-console/internal/domain/search/params"
	"github.com/kailas-cloud/vecdex-console/internal/domain/slot"
	"github.com/kailas-cloud/vecdex-console/internal/domain/usage"
	"github.com/kailas-cloud/vecdex-console/internal/domain/view"
	gen "github.com/kailas-cloud/vecdex-console/internal/transport/generated"
	"github.com/kailas-cloud/vecdex-console/internal/usecase/query"
)

func collectionToGen(c domcol.Collection) gen.Collection {
	var fields *[]gen.FieldDefinition
	if len(c.Fields()) > 0 {
		f := make([]gen.FieldDefinition, len(c.Fields()))
		for i, ff := range c.Fields() {
			f[i] = gen.FieldDefinition{
				Name: ff.Name(),
				Type: string(ff.FieldType()),
			}
		}
		fields = &f
	}

	var vectorDimensions *int
	if c.VectorDim() > 0 {
		d := c.VectorDim()
		vectorDimensions = &d
	}

	stats := c.Stats()
	return gen.Collection{
		Name:             c.Name(),
		Type:             string(c.Type()),
		Fields:           fields,
		VectorDimensions: vectorDimensions,
		CreatedAt:        time.UnixMilli(c.CreatedAt()).UTC(),
		Revision:         c.Revision(),
		NumDocs:          stats.NumDocs,
		Indexing:         stats.Indexing,
	}
}

func documentToGen(d domdoc.Document) gen.Document {
	var tags *map[string]string
	if len(d.Tags()) > 0 {
		t := d.Tags()
		tags = &t
	}

	var numerics *map[string]float64
	if len(d.Numerics()) > 0 {
		n := d.Numerics()
		numerics = &n
	}

	return gen.Document{
		Id:       d.ID(),
		Content:  d.Content(),
		Tags:     tags,
		Numerics: numerics,
	}
}

func presetToGen(p preset.Preset) gen.Preset {
	return gen.Preset{Name: p.Name(), Values: p.Values()}
}

func surfaceToGen(s *query.Surface) gen.SurfaceResponse {
	resp := gen.SurfaceResponse{
		Id:    s.ID(),
		State: s.Store().Snapshot(),
	}
	if props := s.SlotProps(); len(props) > 0 {
		out := make(map[string]gen.SlotProps, len(props))
		for key, p := range props {
			out[string(key)] = gen.SlotProps(p)
		}
		resp.SlotProps = &out
	}
	return resp
}

func usageToGen(r usage.Report) gen.UsageResponse {
	return gen.UsageResponse{
		Period:      gen.UsageResponsePeriod(r.Period()),
		Cluster:     r.Cluster(),
		PeriodStart: r.Start(),
		ResetsAt:    r.End(),
		Queries:     r.Used(),
		Limit:       r.Limit(),
		Remaining:   r.Remaining(),
		Exhausted:   r.Exhausted(),
	}
}

func patchFromGen(p gen.SearchParamsPatch) params.Patch {
	patch := params.Patch{
		QueryBy:  p.QueryBy,
		SortBy:   p.SortBy,
		FacetBy:  p.FacetBy,
		GroupBy:  p.GroupBy,
		FilterBy: p.FilterBy,
		Preset:   p.Preset,
		Page:     p.Page,
		PerPage:  p.PerPage,
	}
	if p.Other != nil {
		patch.Other = make(map[params.Name]string, len(*p.Other))
		for k, v := range *p.Other {
			patch.Other[params.Name(k)] = v
		}
	}
	return patch
}

// propsFromGen keys slot props by the slot type of the target component.
func propsFromGen[K ~string](in map[string]gen.SlotProps) slot.PropsSet[K] {
	if len(in) == 0 {
		return nil
	}
	out := make(slot.PropsSet[K], len(in))
	for key, p := range in {
		out[K(key)] = slot.Props(p)
	}
	return out
}

// slotOverrides turns requested element kinds into components.
func slotOverrides(kinds *map[string]string) slot.Set[query.SlotKey] {
	if kinds == nil || len(*kinds) == 0 {
		return nil
	}
	out := make(slot.Set[query.SlotKey], len(*kinds))
	for key, kind := range *kinds {
		if kind == "" {
			out[query.SlotKey(key)] = nil
			continue
		}
		out[query.SlotKey(key)] = func(props slot.Props, children ...view.Node) view.Node {
			return view.El(kind, props, children...)
		}
	}
	return out
}

func derefString(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

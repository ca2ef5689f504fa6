package redis

import (
	"context"
	"strconv"

	"github.com/redis/rueidis"

	"github.com/kailas-cloud/vecdex-console/internal/db"
)

// DropIndex removes an FT index by name. Indexed documents are kept.
func (s *Store) DropIndex(ctx context.Context, name string) error {
	cmd := s.b().Arbitrary("FT.DROPINDEX").Args(name).Build()
	if err := s.do(ctx, cmd).Error(); err != nil {
		if isRedisErr(err, "unknown index name") {
			return db.ErrIndexNotFound
		}
		return &db.Error{Op: db.OpDropIndex, Err: err}
	}
	return nil
}

// IndexInfo reads document count, schema and indexing state via FT.INFO.
func (s *Store) IndexInfo(ctx context.Context, name string) (*db.IndexInfo, error) {
	cmd := s.b().Arbitrary("FT.INFO").Args(name).Build()
	raw, err := s.do(ctx, cmd).ToArray()
	if err != nil {
		if isRedisErr(err, "unknown index name") {
			return nil, db.ErrIndexNotFound
		}
		return nil, &db.Error{Op: db.OpIndexInfo, Err: err}
	}
	return parseIndexInfo(name, raw), nil
}

// parseIndexInfo walks the flat key/value reply. Unknown keys are ignored.
func parseIndexInfo(name string, raw []rueidis.RedisMessage) *db.IndexInfo {
	info := &db.IndexInfo{Name: name}
	for i := 0; i+1 < len(raw); i += 2 {
		key, err := raw[i].ToString()
		if err != nil {
			continue
		}
		switch key {
		case "index_name":
			if v, err := raw[i+1].ToString(); err == nil {
				info.Name = v
			}
		case "num_docs":
			info.NumDocs = messageInt(raw[i+1])
		case "indexing":
			info.Indexing = messageInt(raw[i+1]) != 0
		case "attributes":
			attrs, err := raw[i+1].ToArray()
			if err != nil {
				continue
			}
			for _, a := range attrs {
				if attr, ok := parseAttribute(a); ok {
					info.Attributes = append(info.Attributes, attr)
				}
			}
		}
	}
	return info
}

func parseAttribute(msg rueidis.RedisMessage) (db.IndexAttribute, bool) {
	parts, err := msg.ToArray()
	if err != nil {
		return db.IndexAttribute{}, false
	}
	m := parseFieldPairs(parts)
	name := m["attribute"]
	if name == "" {
		name = m["identifier"]
	}
	if name == "" {
		return db.IndexAttribute{}, false
	}
	return db.IndexAttribute{Name: name, Type: m["type"]}, true
}

// messageInt reads an integer sent either as a number or a numeric string.
func messageInt(msg rueidis.RedisMessage) int {
	if n, err := msg.AsInt64(); err == nil {
		return int(n)
	}
	s, err := msg.ToString()
	if err != nil {
		return 0
	}
	if n, err := strconv.ParseFloat(s, 64); err == nil {
		return int(n)
	}
	return 0
}

// ListIndexes returns the names of all FT indexes via FT._LIST.
func (s *Store) ListIndexes(ctx context.Context) ([]string, error) {
	cmd := s.b().Arbitrary("FT._LIST").Build()
	names, err := s.do(ctx, cmd).AsStrSlice()
	if err != nil {
		return nil, &db.Error{Op: db.OpList, Err: err}
	}
	return names, nil
}

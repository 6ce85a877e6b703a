// Package docker implements the proxy runtime port, either through the
// Docker Engine API or by shelling out to the docker CLI.
package docker

import (
	"encoding/json"

	"github.com/tidwall/gjson"

	"github.com/bnema/nginx-host-manager/internal/domain"
)

// ParseInspectRecords decodes docker inspect output, either a JSON array or a
// single object. Output that is not valid JSON yields no records.
func ParseInspectRecords(data []byte) []domain.InspectRecord {
	if !gjson.ValidBytes(data) {
		return nil
	}

	root := gjson.ParseBytes(data)
	switch {
	case root.IsObject():
		return []domain.InspectRecord{parseRecord(root)}
	case root.IsArray():
		var records []domain.InspectRecord
		root.ForEach(func(_, value gjson.Result) bool {
			if value.IsObject() {
				records = append(records, parseRecord(value))
			}
			return true
		})
		return records
	default:
		return nil
	}
}

func parseRecord(v gjson.Result) domain.InspectRecord {
	var r domain.InspectRecord

	if name := v.Get("Name"); name.Type == gjson.String {
		r.Name = name.Str
	}

	if state := v.Get("State"); state.IsObject() {
		r.HasState = true
		r.Running = state.Get("Running").Type == gjson.True
		if status := state.Get("Status"); status.Type == gjson.String {
			r.Status = status.Str
		}
	}

	if bindings := v.Get("HostConfig.PortBindings"); bindings.IsObject() {
		r.PortBindings = make(map[string]json.RawMessage)
		bindings.ForEach(func(key, value gjson.Result) bool {
			r.PortBindings[key.String()] = json.RawMessage(value.Raw)
			return true
		})
	}

	for _, tag := range v.Get("RepoTags").Array() {
		if tag.Type == gjson.String {
			r.RepoTags = append(r.RepoTags, tag.Str)
		}
	}

	return r
}

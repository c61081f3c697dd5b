package ftm

// Classify maps one raw source record to its canonical row. It returns false
// for records that produce no row: unknown schemas, nodes without an
// identifier, and edges missing their identifier or either endpoint. Dropping
// such records is expected and never an error.
func Classify(rec map[string]any) (Row, bool) {
	schema := stringField(rec, "schema")

	switch schema {
	case "Company", "Person":
		id := stringField(rec, "id")
		if id == "" {
			return nil, false
		}
		return NodeRow{
			Kind:       NodeKind(schema),
			ID:         id,
			Name:       propFirst(rec, "name"),
			Datasets:   stringSliceField(rec, "datasets"),
			ModifiedAt: modifiedAt(rec),
		}, true
	case "Directorship":
		return classifyEdge(rec, EdgeDirectorship, "director", "organization")
	case "Ownership":
		return classifyEdge(rec, EdgeOwnership, "owner", "asset")
	default:
		return nil, false
	}
}

func classifyEdge(rec map[string]any, typ EdgeType, sourceKey, targetKey string) (Row, bool) {
	id := stringField(rec, "id")
	sourceID := propFirst(rec, sourceKey)
	targetID := propFirst(rec, targetKey)
	if id == "" || sourceID == "" || targetID == "" {
		return nil, false
	}
	return EdgeRow{
		Type:       typ,
		ID:         id,
		SourceID:   sourceID,
		TargetID:   targetID,
		Datasets:   stringSliceField(rec, "datasets"),
		ModifiedAt: modifiedAt(rec),
	}, true
}

// propFirst returns the first element of a multi-valued property list.
// Property values in the export are lists; scalars and empty lists yield "".
func propFirst(rec map[string]any, key string) string {
	props, ok := rec["properties"].(map[string]any)
	if !ok {
		return ""
	}
	list, ok := props[key].([]any)
	if !ok || len(list) == 0 {
		return ""
	}
	s, _ := list[0].(string)
	return s
}

func stringField(rec map[string]any, key string) string {
	s, _ := rec[key].(string)
	return s
}

func stringSliceField(rec map[string]any, key string) []string {
	list, ok := rec[key].([]any)
	if !ok {
		return []string{}
	}
	out := make([]string, 0, len(list))
	for _, v := range list {
		if s, ok := v.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

// modifiedAt tolerates both spellings seen in exports.
func modifiedAt(rec map[string]any) string {
	if s := stringField(rec, "modifiedAt"); s != "" {
		return s
	}
	return stringField(rec, "modified_at")
}

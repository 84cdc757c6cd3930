package validator

var tagMap = map[string]string{
	"required":  "required",
	"omitempty": "optional",
	"uuid":      "invalid_uuid",
	"uuid3":     "invalid_uuid",
	"uuid4":     "invalid_uuid",
	"uuid5":     "invalid_uuid",
	"uuid_v1":   "invalid_uuid_v1",
	"uuid_v3":   "invalid_uuid_v3",
	"uuid_v4":   "invalid_uuid_v4",
	"uuid_v5":   "invalid_uuid_v5",
	"uuid_v6":   "invalid_uuid_v6",
	"uuid_v7":   "invalid_uuid_v7",
	"uuid_nil":  "invalid_uuid_nil",
	"nefield":   "field_should_differ",
	"eqfield":   "field_mismatch",
}

func mapTagToCode(tag string) string {
	if code, ok := tagMap[tag]; ok {
		return code
	}
	return "invalid"
}

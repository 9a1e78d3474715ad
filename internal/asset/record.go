// internal/asset/record.go
//
// Record is one flattened CSV row. Every document yields records with all
// seventeen columns populated (empty string / false when a source field is
// absent) so the output stays rectangular regardless of asset type.

package asset

import "strconv"

// header holds the exact column titles and order of the consolidated CSV.
// The mixed casing mirrors the devtools metadata field names and is part of
// the output contract, not an accident.
var header = []string{
	"customerKey",
	"DataExtensionKey",
	"assetType",
	"assetName",
	"Description",
	"ownerName",
	"createdDate",
	"modifiedDate",
	"status",
	"folderPath",
	"FolderContentType",
	"FieldName",
	"FieldType",
	"MaxLength",
	"DefaultValue",
	"IsRequired",
	"IsPrimaryKey",
}

// Record is one output row of the consolidated CSV.
type Record struct {
	CustomerKey       string
	DataExtensionKey  string
	AssetType         string
	AssetName         string
	Description       string
	OwnerName         string
	CreatedDate       string
	ModifiedDate      string
	Status            string
	FolderPath        string
	FolderContentType string

	// Column details, populated only for data extension fields.
	FieldName         string
	FieldType         string
	FieldMaxLength    string
	FieldDefaultValue string
	FieldIsRequired   bool
	FieldIsPrimaryKey bool
}

// Header returns a copy of the CSV header row.
func Header() []string {
	out := make([]string, len(header))
	copy(out, header)
	return out
}

// Row renders the record as CSV cells in header order.
func (r Record) Row() []string {
	return []string{
		r.CustomerKey,
		r.DataExtensionKey,
		r.AssetType,
		r.AssetName,
		r.Description,
		r.OwnerName,
		r.CreatedDate,
		r.ModifiedDate,
		r.Status,
		r.FolderPath,
		r.FolderContentType,
		r.FieldName,
		r.FieldType,
		r.FieldMaxLength,
		r.FieldDefaultValue,
		strconv.FormatBool(r.FieldIsRequired),
		strconv.FormatBool(r.FieldIsPrimaryKey),
	}
}

// MapDocument flattens one document into zero, one, or many records.
//
// A data extension (r__folder_ContentType == "dataextension") with a
// list-valued Fields property expands to one record per field, in array
// order, all sharing the same base values. An empty Fields array expands to
// zero records. Every other document yields exactly one record with the
// field-detail columns blank.
func MapDocument(doc Document) []Record {
	base := Record{
		CustomerKey: doc.First(
			[]string{"customerKey"},
			[]string{"CustomerKey"},
		),
		// For data extensions the asset's own CustomerKey doubles as the
		// DE key; r__dataExtension_key covers assets that reference one.
		DataExtensionKey: doc.First(
			[]string{"CustomerKey"},
			[]string{"r__dataExtension_key"},
		),
		AssetType: doc.String("assetType", "displayName"),
		AssetName: doc.First(
			[]string{"Name"},
			[]string{"name"},
		),
		Description: doc.First(
			[]string{"Description"},
			[]string{"description"},
		),
		OwnerName:         doc.String("owner", "name"),
		CreatedDate:       doc.String("createdDate"),
		ModifiedDate:      doc.String("modifiedDate"),
		Status:            doc.String("status", "name"),
		FolderPath:        doc.String("r__folder_Path"),
		FolderContentType: doc.String("r__folder_ContentType"),
	}

	if base.FolderContentType == "dataextension" {
		if fields, ok := doc.Array("Fields"); ok {
			records := make([]Record, 0, len(fields))
			for _, field := range fields {
				rec := base
				rec.FieldName = field.String("Name")
				rec.FieldType = field.String("FieldType")
				rec.FieldMaxLength = field.String("MaxLength")
				rec.FieldDefaultValue = field.String("DefaultValue")
				rec.FieldIsRequired = field.Bool("IsRequired")
				rec.FieldIsPrimaryKey = field.Bool("IsPrimaryKey")
				records = append(records, rec)
			}
			return records
		}
	}

	return []Record{base}
}

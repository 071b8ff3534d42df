package catalog

// FieldType enumerates the inline field kinds a Form accepts.
type FieldType string

const (
	FieldText     FieldType = "text"
	FieldEmail    FieldType = "email"
	FieldPassword FieldType = "password"
	FieldNumber   FieldType = "number"
	FieldTextarea FieldType = "textarea"
	FieldSelect   FieldType = "select"
	FieldDate     FieldType = "date"
	FieldCheckbox FieldType = "checkbox"
	FieldRadio    FieldType = "radio"
	FieldSwitch   FieldType = "switch"
	FieldSlider   FieldType = "slider"
	FieldFile     FieldType = "file"
)

var fieldTypes = map[FieldType]bool{
	FieldText: true, FieldEmail: true, FieldPassword: true, FieldNumber: true,
	FieldTextarea: true, FieldSelect: true, FieldDate: true, FieldCheckbox: true,
	FieldRadio: true, FieldSwitch: true, FieldSlider: true, FieldFile: true,
}

// ValidFieldType reports whether the value names a known form field type.
func ValidFieldType(fieldType string) bool {
	return fieldTypes[FieldType(fieldType)]
}

// FieldTypes returns the accepted form field type values.
func FieldTypes() []string {
	return []string{
		string(FieldText), string(FieldEmail), string(FieldPassword),
		string(FieldNumber), string(FieldTextarea), string(FieldSelect),
		string(FieldDate), string(FieldCheckbox), string(FieldRadio),
		string(FieldSwitch), string(FieldSlider), string(FieldFile),
	}
}

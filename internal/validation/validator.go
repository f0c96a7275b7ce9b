// Package validation holds the Product schema rules. It has no knowledge of
// the storage client, so every Repository implementation shares it.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"productmetrics/internal/models"
)

// fieldOrder is the schema declaration order, used for stable error messages.
var fieldOrder = []string{
	"product",
	"material",
	"manufacturer",
	"cost",
	"embodiedCO2",
	"lifecycleStage",
	"carbonCertifications",
	"productionCountry",
	"recyclable",
	"durability",
	"environmentalImpactScore",
	"additionalInfo",
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

func fieldRank(path string) int {
	for i, name := range fieldOrder {
		if name == path {
			return i
		}
	}
	return len(fieldOrder)
}

// Validate casts a candidate document into a Product, checks every constraint
// against the whole document and applies defaults. The returned error is a
// *ValidationError when the document breaks the schema.
func Validate(doc map[string]interface{}) (models.Product, error) {
	verr := newValidationError()
	product := decode(doc, verr)

	if err := validate.Struct(product); err != nil {
		var fieldErrs validator.ValidationErrors
		if !errors.As(err, &fieldErrs) {
			return models.Product{}, err
		}
		for _, fe := range fieldErrs {
			verr.add(violationFromFieldError(fe))
		}
	}

	if !verr.empty() {
		return models.Product{}, verr.finish()
	}

	if product.CarbonCertifications == nil {
		product.CarbonCertifications = models.StringList{}
	}
	return product, nil
}

// Merge overlays patch on the stored document and returns the full candidate
// that Validate must accept before the update is persisted. A null value clears
// the field; the identifier can never be patched.
func Merge(existing models.Product, patch map[string]interface{}) map[string]interface{} {
	merged := ToDocument(existing)
	for key, value := range patch {
		if key == "_id" {
			continue
		}
		if value == nil {
			delete(merged, key)
			continue
		}
		merged[key] = value
	}
	return merged
}

// ToDocument converts a Product back into candidate form, without its identifier.
func ToDocument(p models.Product) map[string]interface{} {
	doc := map[string]interface{}{
		"product":        p.Product,
		"material":       p.Material,
		"lifecycleStage": p.LifecycleStage,
		"recyclable":     p.Recyclable,
	}
	if p.Manufacturer != nil {
		doc["manufacturer"] = *p.Manufacturer
	}
	if p.Cost != nil {
		doc["cost"] = *p.Cost
	}
	if p.EmbodiedCO2 != nil {
		doc["embodiedCO2"] = *p.EmbodiedCO2
	}
	if p.CarbonCertifications != nil {
		doc["carbonCertifications"] = []string(p.CarbonCertifications)
	}
	if p.ProductionCountry != nil {
		doc["productionCountry"] = *p.ProductionCountry
	}
	if p.Durability != nil {
		doc["durability"] = *p.Durability
	}
	if p.EnvironmentalImpactScore != nil {
		doc["environmentalImpactScore"] = *p.EnvironmentalImpactScore
	}
	if p.AdditionalInfo != nil {
		doc["additionalInfo"] = p.AdditionalInfo
	}
	return doc
}

// decode casts known paths into a Product and records cast failures. Unknown
// keys are dropped.
func decode(doc map[string]interface{}, verr *ValidationError) models.Product {
	var p models.Product

	str := func(path string, dst *string) {
		if v, ok := doc[path]; ok && v != nil {
			s, err := castString(path, v)
			if err != nil {
				verr.add(err.(*CastError).violation())
				return
			}
			*dst = s
		}
	}
	optStr := func(path string, dst **string) {
		if v, ok := doc[path]; ok && v != nil {
			s, err := castString(path, v)
			if err != nil {
				verr.add(err.(*CastError).violation())
				return
			}
			*dst = &s
		}
	}
	num := func(path string, dst **float64) {
		if v, ok := doc[path]; ok && v != nil {
			f, err := castNumber(path, v)
			if err != nil {
				verr.add(err.(*CastError).violation())
				return
			}
			*dst = f
		}
	}

	str("product", &p.Product)
	str("material", &p.Material)
	optStr("manufacturer", &p.Manufacturer)
	num("cost", &p.Cost)
	num("embodiedCO2", &p.EmbodiedCO2)
	str("lifecycleStage", &p.LifecycleStage)
	optStr("productionCountry", &p.ProductionCountry)
	optStr("durability", &p.Durability)
	num("environmentalImpactScore", &p.EnvironmentalImpactScore)

	if v, ok := doc["carbonCertifications"]; ok && v != nil {
		list, err := castStringList("carbonCertifications", v)
		if err != nil {
			verr.add(err.(*CastError).violation())
		} else {
			p.CarbonCertifications = list
		}
	}
	if v, ok := doc["recyclable"]; ok && v != nil {
		b, err := castBool("recyclable", v)
		if err != nil {
			verr.add(err.(*CastError).violation())
		} else {
			p.Recyclable = b
		}
	}
	if v, ok := doc["additionalInfo"]; ok && v != nil {
		info, err := castObject("additionalInfo", v)
		if err != nil {
			verr.add(err.(*CastError).violation())
		} else {
			p.AdditionalInfo = info
		}
	}

	return p
}

func violationFromFieldError(fe validator.FieldError) *Violation {
	path := fe.Field()
	v := &Violation{Name: "ValidatorError", Path: path}

	switch fe.Tag() {
	case "required":
		v.Kind = KindRequired
		v.Message = fmt.Sprintf("Path `%s` is required.", path)
	case "oneof":
		v.Kind = KindEnum
		v.Value = fe.Value()
		v.Message = fmt.Sprintf("`%v` is not a valid enum value for path `%s`.", fe.Value(), path)
	case "gte":
		v.Kind = KindMin
		v.Value = fe.Value()
		v.Message = fmt.Sprintf("Path `%s` (%v) is less than minimum allowed value (%s).", path, fe.Value(), fe.Param())
	case "lte":
		v.Kind = KindMax
		v.Value = fe.Value()
		v.Message = fmt.Sprintf("Path `%s` (%v) is more than maximum allowed value (%s).", path, fe.Value(), fe.Param())
	default:
		v.Kind = fe.Tag()
		v.Value = fe.Value()
		v.Message = fmt.Sprintf("Path `%s` failed on the '%s' rule.", path, fe.Tag())
	}
	return v
}

package models

import "go.mongodb.org/mongo-driver/bson/primitive"

const (
	StageProduction = "production"
	StageUse        = "use"
	StageEndOfLife  = "end-of-life"
)

// LifecycleStages lists the accepted lifecycleStage values in declaration order.
var LifecycleStages = []string{StageProduction, StageUse, StageEndOfLife}

// Product is the persisted environmental metrics record. Required numbers are
// pointers so that a zero cost is distinguishable from a missing one; optional
// text is a pointer so an explicit empty string survives a round trip.
type Product struct {
	ID                       primitive.ObjectID     `bson:"_id,omitempty" json:"_id" swaggertype:"string" example:"65f1c0a2b4d3e8a1c2f3d4e5"`
	Product                  string                 `bson:"product" json:"product" validate:"required"`
	Material                 string                 `bson:"material" json:"material" validate:"required"`
	Manufacturer             *string                `bson:"manufacturer,omitempty" json:"manufacturer,omitempty"`
	Cost                     *float64               `bson:"cost" json:"cost" validate:"required"`
	EmbodiedCO2              *float64               `bson:"embodiedCO2" json:"embodiedCO2" validate:"required"`
	LifecycleStage           string                 `bson:"lifecycleStage" json:"lifecycleStage" validate:"required,oneof=production use end-of-life"`
	CarbonCertifications     StringList             `bson:"carbonCertifications" json:"carbonCertifications" swaggertype:"array,string"`
	ProductionCountry        *string                `bson:"productionCountry,omitempty" json:"productionCountry,omitempty"`
	Recyclable               bool                   `bson:"recyclable" json:"recyclable"`
	Durability               *string                `bson:"durability,omitempty" json:"durability,omitempty"`
	EnvironmentalImpactScore *float64               `bson:"environmentalImpactScore,omitempty" json:"environmentalImpactScore,omitempty" validate:"omitempty,gte=0,lte=100"`
	AdditionalInfo           map[string]interface{} `bson:"additionalInfo,omitempty" json:"additionalInfo,omitempty"`
}

// Float returns a pointer to v, for building products in code.
func Float(v float64) *float64 {
	return &v
}

func String(v string) *string {
	return &v
}

package scoring

// WeightTable holds percentage weights per dimension. A valid table sums to 100.
type WeightTable struct {
	CodeQuality         int `mapstructure:"code_quality" json:"code_quality"`
	ProjectImpact       int `mapstructure:"project_impact" json:"project_impact"`
	CurrentActive       int `mapstructure:"current_active" json:"current_active"`
	ProductionReadiness int `mapstructure:"production_readiness" json:"production_readiness"`
	TechnicalSkill      int `mapstructure:"technical_skill" json:"technical_skill"`
	CommunityTrust      int `mapstructure:"community_trust" json:"community_trust"`
}

// For returns the weight of a dimension.
func (w WeightTable) For(d Dimension) int {
	switch d {
	case DimensionCodeQuality:
		return w.CodeQuality
	case DimensionProjectImpact:
		return w.ProjectImpact
	case DimensionCurrentActive:
		return w.CurrentActive
	case DimensionProductionReadiness:
		return w.ProductionReadiness
	case DimensionTechnicalSkill:
		return w.TechnicalSkill
	case DimensionCommunityTrust:
		return w.CommunityTrust
	default:
		return 0
	}
}

// Sum adds up all six weights.
func (w WeightTable) Sum() int {
	total := 0
	for _, d := range Dimensions {
		total += w.For(d)
	}
	return total
}

// ProfileWeights holds one table per profile archetype.
type ProfileWeights struct {
	Student      WeightTable `mapstructure:"student" json:"student"`
	Professional WeightTable `mapstructure:"professional" json:"professional"`
	OpenSource   WeightTable `mapstructure:"open_source" json:"open_source"`
}

// For returns the table for p. Anything outside the three archetypes gets
// the professional table.
func (pw ProfileWeights) For(p ProfileType) WeightTable {
	switch p {
	case ProfileStudent:
		return pw.Student
	case ProfileOpenSource:
		return pw.OpenSource
	default:
		return pw.Professional
	}
}

// DefaultWeights returns the built-in weight tables. Students lean on project
// impact over production readiness; open-source profiles lean on community.
func DefaultWeights() ProfileWeights {
	return ProfileWeights{
		Student: WeightTable{
			CodeQuality:         20,
			ProjectImpact:       30,
			CurrentActive:       15,
			ProductionReadiness: 10,
			TechnicalSkill:      15,
			CommunityTrust:      10,
		},
		Professional: WeightTable{
			CodeQuality:         20,
			ProjectImpact:       20,
			CurrentActive:       15,
			ProductionReadiness: 20,
			TechnicalSkill:      15,
			CommunityTrust:      10,
		},
		OpenSource: WeightTable{
			CodeQuality:         15,
			ProjectImpact:       20,
			CurrentActive:       15,
			ProductionReadiness: 15,
			TechnicalSkill:      10,
			CommunityTrust:      25,
		},
	}
}

// ResolveWeights returns the weight table for a profile type.
func ResolveWeights(p ProfileType, c *Calibration) WeightTable {
	return c.Weights.For(p)
}

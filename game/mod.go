package game

const (
	BoardSize = 8

	MinLevel = 1
	MaxLevel = 4

	// TransformThreshold is the capture involvement needed before a piece levels up.
	TransformThreshold = 2

	TalentRange     = 3
	TalentBuffBonus = 1
	LeaderRange     = 2
	InvestorRange   = 1

	// BuffLeaderCount is how many aligned friendly Leaders grant a Talent extra range.
	BuffLeaderCount = 2

	// VulnerabilityThreshold is the number of threatening pieces on an Investor's
	// second ring that demotes it to Strategist.
	VulnerabilityThreshold = 4
)

package huelib

// Rule executes actions when its conditions evaluate to true.
type Rule struct {
	ID             string      `json:"-"`
	Name           string      `json:"name"`
	Owner          *string     `json:"owner,omitempty"`
	LastTriggered  *Time       `json:"lasttriggered,omitempty"`
	TimesTriggered int         `json:"timestriggered"`
	Created        *Time       `json:"created,omitempty"`
	Status         RuleStatus  `json:"status"`
	Conditions     []Condition `json:"conditions"`
	Actions        []Action    `json:"actions"`
}

func (r Rule) withID(id string) Rule {
	r.ID = id
	return r
}

// RuleStatus is the activation state of a rule.
type RuleStatus string

const (
	RuleEnabled  RuleStatus = "enabled"
	RuleDisabled RuleStatus = "disabled"
	// RuleResourceDeleted marks rules referring to deleted resources.
	RuleResourceDeleted RuleStatus = "resourcedeleted"
)

// Condition is one condition of a rule, comparing a sensor attribute
// against a value.
type Condition struct {
	Address  string            `json:"address"`
	Operator ConditionOperator `json:"operator"`
	// Comparison value; unused by operators like "dx" that only observe
	// changes.
	Value *string `json:"value,omitempty"`
}

// ConditionOperator compares an attribute against a condition value.
type ConditionOperator string

const (
	OperatorEqual       ConditionOperator = "eq"
	OperatorGreaterThan ConditionOperator = "gt"
	OperatorLessThan    ConditionOperator = "lt"
	// OperatorChanged triggers on any attribute change.
	OperatorChanged ConditionOperator = "dx"
	// OperatorChangedDelayed triggers on a delayed attribute change.
	OperatorChangedDelayed ConditionOperator = "ddx"
	OperatorStable         ConditionOperator = "stable"
	OperatorNotStable      ConditionOperator = "not stable"
	// OperatorIn triggers at a given time of day.
	OperatorIn    ConditionOperator = "in"
	OperatorNotIn ConditionOperator = "not in"
)

// RuleCreator creates a new rule. The bridge assigns the identifier.
type RuleCreator struct {
	Name       *string     `json:"name,omitempty"`
	Status     *RuleStatus `json:"status,omitempty"`
	Conditions []Condition `json:"conditions"`
	Actions    []Action    `json:"actions"`
}

// RuleModifier changes attributes of a rule.
type RuleModifier struct {
	Name       *string     `json:"name,omitempty"`
	Status     *RuleStatus `json:"status,omitempty"`
	Conditions []Condition `json:"conditions,omitempty"`
	Actions    []Action    `json:"actions,omitempty"`
}

// CreateRule creates a new rule and returns its identifier.
func (b *Bridge) CreateRule(creator RuleCreator) (string, error) {
	return createResource(b, "rules", creator)
}

// GetRule returns the rule with the given identifier.
func (b *Bridge) GetRule(id string) (Rule, error) {
	return getResource[Rule](b, "rules", id)
}

// GetAllRules returns all rules, in unspecified order.
func (b *Bridge) GetAllRules() ([]Rule, error) {
	return getAllResources[Rule](b, "rules")
}

// SetRule modifies a rule and returns the per-field outcomes.
func (b *Bridge) SetRule(id string, modifier RuleModifier) ([]Outcome, error) {
	return setResource(b, "rules/"+id, modifier)
}

// DeleteRule deletes a rule from the bridge.
func (b *Bridge) DeleteRule(id string) error {
	return deleteResource(b, "rules/"+id)
}

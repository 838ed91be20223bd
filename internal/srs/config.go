package srs

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// tableSchema is the JSON Schema every stage-table config file must
// satisfy before it is interpreted. Malformed tables are a fatal
// configuration error, never a silent fallback to defaults.
const tableSchema = `{
  "type": "object",
  "required": ["policy"],
  "properties": {
    "policy": {"enum": ["backoff", "fixed-stage", "sm2", "dual-track"]},
    "retry_delay_minutes": {"type": "integer", "minimum": 1},
    "increment": {"type": "integer", "minimum": 1, "maximum": 100},
    "growth": {"type": "number", "exclusiveMinimum": 1},
    "base_interval_hours": {
      "type": "object",
      "properties": {
        "easy": {"type": "number", "minimum": 0},
        "medium": {"type": "number", "minimum": 0},
        "hard": {"type": "number", "minimum": 0},
        "impossible": {"type": "number", "minimum": 0}
      },
      "additionalProperties": false
    },
    "stages": {
      "type": "array",
      "minItems": 1,
      "items": {
        "type": "object",
        "required": ["name", "interval_hours"],
        "properties": {
          "name": {"type": "string", "minLength": 1},
          "mastery": {"type": "integer", "minimum": 0, "maximum": 100},
          "meaning": {"type": "integer", "minimum": 1},
          "reading": {"type": "integer", "minimum": 1},
          "interval_hours": {"type": "number", "minimum": 0}
        },
        "additionalProperties": false
      }
    }
  },
  "additionalProperties": false
}`

type tableConfig struct {
	Policy            Kind               `json:"policy"`
	RetryDelayMinutes int                `json:"retry_delay_minutes"`
	Increment         int                `json:"increment"`
	Growth            float64            `json:"growth"`
	BaseIntervalHours map[string]float64 `json:"base_interval_hours"`
	Stages            []stageConfig      `json:"stages"`
}

type stageConfig struct {
	Name          string  `json:"name"`
	Mastery       int     `json:"mastery"`
	Meaning       int     `json:"meaning"`
	Reading       int     `json:"reading"`
	IntervalHours float64 `json:"interval_hours"`
}

var compiledTableSchema *jsonschema.Schema

func init() {
	var parsed any
	if err := json.Unmarshal([]byte(tableSchema), &parsed); err != nil {
		panic(fmt.Sprintf("parse stage table schema: %v", err))
	}
	c := jsonschema.NewCompiler()
	if err := c.AddResource("schema://stage-table.json", parsed); err != nil {
		panic(fmt.Sprintf("add stage table schema: %v", err))
	}
	compiled, err := c.Compile("schema://stage-table.json")
	if err != nil {
		panic(fmt.Sprintf("compile stage table schema: %v", err))
	}
	compiledTableSchema = compiled
}

// LoadTableFile reads a stage-table config file and returns the policy
// kind and table it describes.
func LoadTableFile(path string) (Kind, StageTable, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return "", StageTable{}, fmt.Errorf("read stage table: %w", err)
	}
	return ParseTable(raw)
}

// ParseTable validates raw JSON against the stage-table schema and
// converts it into a StageTable. The returned table always has the
// policy's defaults filled in for fields the config omits.
func ParseTable(raw []byte) (Kind, StageTable, error) {
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return "", StageTable{}, fmt.Errorf("invalid JSON: %w", err)
	}
	if err := compiledTableSchema.Validate(parsed); err != nil {
		return "", StageTable{}, fmt.Errorf("stage table schema validation failed: %w", err)
	}

	var cfg tableConfig
	if err := json.Unmarshal(raw, &cfg); err != nil {
		return "", StageTable{}, fmt.Errorf("decode stage table: %w", err)
	}

	table := DefaultTable(cfg.Policy)

	if cfg.RetryDelayMinutes > 0 {
		table.RetryDelay = time.Duration(cfg.RetryDelayMinutes) * time.Minute
	}
	if cfg.Increment > 0 {
		table.Increment = cfg.Increment
	}
	if cfg.Growth > 0 {
		table.Growth = cfg.Growth
	}
	if len(cfg.BaseIntervalHours) > 0 {
		base := make(map[Difficulty]time.Duration, len(cfg.BaseIntervalHours))
		for k, v := range cfg.BaseIntervalHours {
			base[Difficulty(k)] = time.Duration(v * float64(time.Hour))
		}
		for _, d := range []Difficulty{Easy, Medium, Hard, Impossible} {
			if _, ok := base[d]; !ok {
				base[d] = table.BaseIntervals[d]
			}
		}
		table.BaseIntervals = base
	}
	if len(cfg.Stages) > 0 {
		stages := make([]StageDef, len(cfg.Stages))
		for i, s := range cfg.Stages {
			stages[i] = StageDef{
				Name:     s.Name,
				Mastery:  s.Mastery,
				Meaning:  s.Meaning,
				Reading:  s.Reading,
				Interval: time.Duration(s.IntervalHours * float64(time.Hour)),
			}
		}
		stages = applyStageDefaults(cfg.Policy, stages)
		table.Stages = stages
	}

	if err := validateTable(cfg.Policy, table); err != nil {
		return "", StageTable{}, err
	}
	return cfg.Policy, table, nil
}

// applyStageDefaults fills per-stage thresholds the config left at zero.
func applyStageDefaults(kind Kind, stages []StageDef) []StageDef {
	if kind != KindDualTrack {
		return stages
	}
	for i := range stages {
		if stages[i].Meaning == 0 {
			stages[i].Meaning = 1
		}
		if stages[i].Reading == 0 {
			stages[i].Reading = 1
		}
	}
	return stages
}

// validateTable enforces the cross-field constraints the schema cannot
// express.
func validateTable(kind Kind, table StageTable) error {
	switch kind {
	case KindFixedStage:
		if len(table.Stages) == 0 {
			return fmt.Errorf("fixed-stage table requires at least one stage")
		}
		if table.Stages[0].Mastery != 0 {
			return fmt.Errorf("fixed-stage table must start at mastery 0, got %d", table.Stages[0].Mastery)
		}
		for i := 1; i < len(table.Stages); i++ {
			if table.Stages[i].Mastery <= table.Stages[i-1].Mastery {
				return fmt.Errorf("fixed-stage thresholds must be strictly increasing: stage %d", i)
			}
		}
	case KindDualTrack:
		if len(table.Stages) == 0 {
			return fmt.Errorf("dual-track table requires at least one stage")
		}
	case KindBackoff:
		if table.Growth <= 1 {
			return fmt.Errorf("backoff growth must exceed 1, got %v", table.Growth)
		}
	}
	return nil
}

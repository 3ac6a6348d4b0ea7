// Package application holds the rule engine: a fixed, ordered catalog
// of independent checks run against one dotfiles repository.
package application

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/dotcheck/dotcheck/internal/adapters/outbound/dotter"
	"github.com/dotcheck/dotcheck/internal/domain"
	"github.com/dotcheck/dotcheck/internal/logging"
)

// Validator runs the rule catalog. Rules share only the read-only
// RunConfig and the git/loader ports; no rule reads another's output.
type Validator struct {
	cfg    domain.RunConfig
	git    domain.GitClient
	loader *dotter.Loader
	log    zerolog.Logger
}

// NewValidator creates a Validator with its required dependencies.
func NewValidator(cfg domain.RunConfig, git domain.GitClient, loader *dotter.Loader) *Validator {
	return &Validator{
		cfg:    cfg,
		git:    git,
		loader: loader,
		log:    logging.GetLogger("validator"),
	}
}

// rule pairs a fallback label with a check function. The label is used
// when the rule fails before it can name its own result.
type rule struct {
	name string
	run  func() (*domain.RuleResult, error)
}

// Run executes every rule in catalog order. onResult, if non-nil, is
// called with each result as it completes so the caller can stream
// output. The returned slice always has one entry per rule.
func (v *Validator) Run(onResult func(*domain.RuleResult)) []*domain.RuleResult {
	rules := []rule{
		{"Dotter configuration files exist", v.configFilesExist},
		{"Dotter files exist and are tracked", v.filesTracked},
		{"No broken symlinks", v.noBrokenSymlinks},
		{"TOML files are valid", v.tomlFilesValid},
		{"JSON files are valid", v.jsonFilesValid},
		{"YAML files are valid", v.yamlFilesValid},
	}

	results := make([]*domain.RuleResult, 0, len(rules))
	for _, r := range rules {
		result := v.invoke(r)
		if onResult != nil {
			onResult(result)
		}
		results = append(results, result)
	}
	return results
}

// invoke contains a rule's failure: a returned error or a recovered
// panic becomes a single synthetic error issue, so one broken rule
// never stops the others or the final exit code.
func (v *Validator) invoke(r rule) (result *domain.RuleResult) {
	defer func() {
		if rec := recover(); rec != nil {
			v.log.Error().Str("rule", r.name).Interface("panic", rec).Msg("rule panicked")
			result = domain.NewRuleResult(r.name, []domain.Issue{{
				Severity: domain.SeverityError,
				Message:  fmt.Sprintf("Internal rule failure: %v", rec),
			}})
		}
	}()

	v.log.Debug().Str("rule", r.name).Msg("running rule")

	result, err := r.run()
	if err != nil {
		v.log.Error().Str("rule", r.name).Err(err).Msg("rule failed internally")
		return domain.NewRuleResult(r.name, []domain.Issue{{
			Severity: domain.SeverityError,
			Message:  fmt.Sprintf("Internal rule failure: %v", err),
		}})
	}
	return result
}

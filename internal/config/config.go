// Package config reads and writes the auditprep.yaml project file. The file
// carries the business identity, report settings, and the capital-note inputs
// that live outside the trial balance.
package config

import (
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/auditprep-dev/auditprep/internal/capital"
	"github.com/auditprep-dev/auditprep/internal/model"
)

// FileName is the project configuration file name.
const FileName = "auditprep.yaml"

// Config represents the top-level auditprep.yaml configuration.
type Config struct {
	Business BusinessConfig `yaml:"business"`
	Report   ReportConfig   `yaml:"report"`
	Capital  CapitalConfig  `yaml:"capital,omitempty"`
}

// BusinessConfig identifies the reporting entity.
type BusinessConfig struct {
	Name          string `yaml:"name"`
	EntityType    string `yaml:"entity_type"`
	FinancialYear string `yaml:"financial_year"` // e.g. "2025-26"
}

// ReportConfig controls statement assembly and rendering.
type ReportConfig struct {
	// BalanceSheetNote seeds the Balance Sheet note sequence.
	BalanceSheetNote int `yaml:"bs_starting_note"`
	// ProfitLossNote seeds the P&L note sequence.
	ProfitLossNote int `yaml:"pl_starting_note"`
	// Scale is the reporting unit: rupees, hundreds, thousands, lakhs,
	// millions, crores, or auto.
	Scale string `yaml:"scale"`
}

// CapitalConfig carries the capital-note inputs for whichever entity category
// applies. Amounts are strings so formatted values load as-is.
type CapitalConfig struct {
	AuthorizedShares []ShareClassConfig  `yaml:"authorized_shares,omitempty"`
	IssuedShares     []ShareClassConfig  `yaml:"issued_shares,omitempty"`
	OpeningShares    int64               `yaml:"opening_shares,omitempty"`
	OpeningAmount    string              `yaml:"opening_amount,omitempty"`
	MovementShares   int64               `yaml:"movement_shares,omitempty"`
	MovementAmount   string              `yaml:"movement_amount,omitempty"`
	MajorHolders     []ShareholderConfig `yaml:"major_holders,omitempty"`
	Promoters        []ShareholderConfig `yaml:"promoters,omitempty"`
	Partners         []PartnerConfig     `yaml:"partners,omitempty"`
	// Proprietor maps owner-capital catalogue keys to amounts.
	Proprietor map[string]string `yaml:"proprietor,omitempty"`
}

// ShareClassConfig is one class of shares.
type ShareClassConfig struct {
	Description string `yaml:"description"`
	Shares      int64  `yaml:"shares"`
	FaceValue   string `yaml:"face_value"`
}

// ShareholderConfig is one disclosed shareholder.
type ShareholderConfig struct {
	Name    string `yaml:"name"`
	Shares  int64  `yaml:"shares"`
	Percent string `yaml:"percent"`
}

// PartnerConfig is one partner's capital account movement.
type PartnerConfig struct {
	Name         string `yaml:"name"`
	SharePercent string `yaml:"share_percent"`
	Opening      string `yaml:"opening"`
	Introduced   string `yaml:"introduced,omitempty"`
	Remuneration string `yaml:"remuneration,omitempty"`
	Interest     string `yaml:"interest,omitempty"`
	ProfitLoss   string `yaml:"profit_loss,omitempty"`
	Withdrawal   string `yaml:"withdrawal,omitempty"`
}

// Load reads an auditprep.yaml file from disk.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Default returns a Config with sensible defaults for a new project.
func Default(businessName, entityType string) *Config {
	return &Config{
		Business: BusinessConfig{
			Name:       businessName,
			EntityType: entityType,
		},
		Report: ReportConfig{
			BalanceSheetNote: 3,
			ProfitLossNote:   19,
			Scale:            "rupees",
		},
	}
}

// EntityType resolves the configured entity type.
func (c *Config) EntityType() model.EntityType {
	return model.EntityType(c.Business.EntityType)
}

// CapitalInputs converts the configured capital data into reconciler inputs.
// Malformed amounts read as zero and are reported in diagnostics.
func (c *Config) CapitalInputs() (capital.Inputs, []string) {
	var diags []string
	amount := func(field, raw string) decimal.Decimal {
		v, ok := model.ParseAmount(raw)
		if !ok {
			diags = append(diags, fmt.Sprintf("capital: unreadable %s %q, using 0", field, raw))
		}
		return v
	}

	inputs := capital.Inputs{
		ShareReconciliation: capital.ShareReconciliation{
			OpeningNumber:  c.Capital.OpeningShares,
			OpeningAmount:  amount("opening_amount", c.Capital.OpeningAmount),
			MovementNumber: c.Capital.MovementShares,
			MovementAmount: amount("movement_amount", c.Capital.MovementAmount),
		},
	}
	for _, s := range c.Capital.AuthorizedShares {
		inputs.Authorized = append(inputs.Authorized, capital.ShareClass{
			Description:    s.Description,
			NumberOfShares: s.Shares,
			FaceValue:      amount("face_value", s.FaceValue),
		})
	}
	for _, s := range c.Capital.IssuedShares {
		inputs.Issued = append(inputs.Issued, capital.ShareClass{
			Description:    s.Description,
			NumberOfShares: s.Shares,
			FaceValue:      amount("face_value", s.FaceValue),
		})
	}
	for _, h := range c.Capital.MajorHolders {
		inputs.MajorHolders = append(inputs.MajorHolders, capital.Shareholder{
			Name:    h.Name,
			Shares:  h.Shares,
			Percent: amount("percent", h.Percent),
		})
	}
	for _, h := range c.Capital.Promoters {
		inputs.Promoters = append(inputs.Promoters, capital.Shareholder{
			Name:    h.Name,
			Shares:  h.Shares,
			Percent: amount("percent", h.Percent),
		})
	}
	for _, p := range c.Capital.Partners {
		inputs.Partners = append(inputs.Partners, capital.Partner{
			Name:              p.Name,
			SharePercent:      amount("share_percent", p.SharePercent),
			OpeningBalance:    amount("opening", p.Opening),
			CapitalIntroduced: amount("introduced", p.Introduced),
			Remuneration:      amount("remuneration", p.Remuneration),
			Interest:          amount("interest", p.Interest),
			ProfitLoss:        amount("profit_loss", p.ProfitLoss),
			Withdrawal:        amount("withdrawal", p.Withdrawal),
		})
	}
	if len(c.Capital.Proprietor) > 0 {
		inputs.ProprietorValues = make(map[string]decimal.Decimal, len(c.Capital.Proprietor))
		for key, raw := range c.Capital.Proprietor {
			inputs.ProprietorValues[key] = amount(key, raw)
		}
	}
	return inputs, diags
}

package domain

import (
	"errors"
	"fmt"
	"slices"
)

// Statement bucket names used by the default roles.
const (
	BucketCashBank               = "kas_bank"
	BucketInventory              = "persediaan"
	BucketEquipment              = "peralatan"
	BucketOtherAssets            = "aset_lainnya"
	BucketAccumulatedDepreciaton = "akumulasi_penyusutan"
	BucketOtherContraAssets      = "aset_kontra_lainnya"
	BucketAccountsPayable        = "utang_usaha"
	BucketOtherLiabilities       = "utang_lainnya"
	BucketTransportation         = "beban_transportasi"
	BucketLabor                  = "beban_tenaga_kerja"
	BucketRent                   = "beban_sewa"
	BucketRepairs                = "beban_perbaikan"
	BucketDepreciation           = "beban_penyusutan"
	BucketOtherExpenses          = "beban_lain_lain"
)

// ChartRoles maps account codes to the semantic roles the statements and the closing
// procedure rely on. Unmapped codes fall into the Other* bucket of their section.
type ChartRoles struct {
	CapitalAccount       string            `mapstructure:"capital_account" json:"capitalAccount"`
	DrawingAccount       string            `mapstructure:"drawing_account" json:"drawingAccount"`
	IncomeSummaryAccount string            `mapstructure:"income_summary_account" json:"incomeSummaryAccount"`
	COGSAccounts         []string          `mapstructure:"cogs_accounts" json:"cogsAccounts"`
	AssetBuckets         map[string]string `mapstructure:"asset_buckets" json:"assetBuckets"`
	ContraAssetBuckets   map[string]string `mapstructure:"contra_asset_buckets" json:"contraAssetBuckets"`
	LiabilityBuckets     map[string]string `mapstructure:"liability_buckets" json:"liabilityBuckets"`
	ExpenseBuckets       map[string]string `mapstructure:"expense_buckets" json:"expenseBuckets"`
	OtherAssetBucket     string            `mapstructure:"other_asset_bucket" json:"otherAssetBucket"`
	OtherContraBucket    string            `mapstructure:"other_contra_bucket" json:"otherContraBucket"`
	OtherLiabilityBucket string            `mapstructure:"other_liability_bucket" json:"otherLiabilityBucket"`
	OtherExpenseBucket   string            `mapstructure:"other_expense_bucket" json:"otherExpenseBucket"`
}

// DefaultChartRoles returns the roles matching DefaultChartOfAccounts.
func DefaultChartRoles() ChartRoles {
	return ChartRoles{
		CapitalAccount:       "3101",
		DrawingAccount:       "3102",
		IncomeSummaryAccount: "3901",
		COGSAccounts:         []string{"5101", "5901"},
		AssetBuckets: map[string]string{
			"1101": BucketCashBank,
			"1201": BucketInventory,
			"1301": BucketEquipment,
		},
		ContraAssetBuckets: map[string]string{
			"1311": BucketAccumulatedDepreciaton,
		},
		LiabilityBuckets: map[string]string{
			"2101": BucketAccountsPayable,
			"2102": BucketOtherLiabilities,
		},
		ExpenseBuckets: map[string]string{
			"5201": BucketTransportation,
			"5202": BucketLabor,
			"5203": BucketRent,
			"5204": BucketRepairs,
			"5301": BucketDepreciation,
		},
		OtherAssetBucket:     BucketOtherAssets,
		OtherContraBucket:    BucketOtherContraAssets,
		OtherLiabilityBucket: BucketOtherLiabilities,
		OtherExpenseBucket:   BucketOtherExpenses,
	}
}

// Validate checks that the designated accounts are set and distinct.
func (r ChartRoles) Validate() error {
	var errs []error
	if r.CapitalAccount == "" {
		errs = append(errs, errors.New("capital account is required"))
	}
	if r.DrawingAccount == "" {
		errs = append(errs, errors.New("drawing account is required"))
	}
	if r.IncomeSummaryAccount == "" {
		errs = append(errs, errors.New("income summary account is required"))
	}
	if r.CapitalAccount != "" && (r.CapitalAccount == r.DrawingAccount || r.CapitalAccount == r.IncomeSummaryAccount) {
		errs = append(errs, fmt.Errorf("capital account %s must differ from drawing and income summary accounts", r.CapitalAccount))
	}
	if r.DrawingAccount != "" && r.DrawingAccount == r.IncomeSummaryAccount {
		errs = append(errs, fmt.Errorf("drawing account %s must differ from income summary account", r.DrawingAccount))
	}
	return errors.Join(errs...)
}

// IsCOGS reports whether code is a cost-of-goods account.
func (r ChartRoles) IsCOGS(code string) bool {
	return slices.Contains(r.COGSAccounts, code)
}

// IsEquityRole reports whether code is the capital, drawing or income summary account.
func (r ChartRoles) IsEquityRole(code string) bool {
	return code == r.CapitalAccount || code == r.DrawingAccount || code == r.IncomeSummaryAccount
}

// AssetBucket returns the statement bucket for an asset account.
func (r ChartRoles) AssetBucket(code string) string {
	return bucketOr(r.AssetBuckets, code, r.OtherAssetBucket)
}

// ContraAssetBucket returns the statement bucket for a contra-asset account.
func (r ChartRoles) ContraAssetBucket(code string) string {
	return bucketOr(r.ContraAssetBuckets, code, r.OtherContraBucket)
}

// LiabilityBucket returns the statement bucket for a liability account.
func (r ChartRoles) LiabilityBucket(code string) string {
	return bucketOr(r.LiabilityBuckets, code, r.OtherLiabilityBucket)
}

// ExpenseBucket returns the operating expense bucket for an expense account.
func (r ChartRoles) ExpenseBucket(code string) string {
	return bucketOr(r.ExpenseBuckets, code, r.OtherExpenseBucket)
}

func bucketOr(buckets map[string]string, code, fallback string) string {
	if b, ok := buckets[code]; ok && b != "" {
		return b
	}
	return fallback
}

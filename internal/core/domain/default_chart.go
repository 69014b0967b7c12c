package domain

// Account categories used by the default chart.
const (
	CategoryCashAndBank         = "Kas & Bank"
	CategoryInventory           = "Persediaan"
	CategoryFixedAsset          = "Aktiva Tetap"
	CategoryCurrentLiability    = "Liabilitas Jangka Pendek"
	CategoryCapital             = "Modal"
	CategoryIncomeSummary       = "Laba Rugi"
	CategoryRevenue             = "Pendapatan Usaha"
	CategoryOtherRevenue        = "Pendapatan Lain"
	CategoryCostOfGoods         = "Harga Pokok"
	CategoryOperatingExpense    = "Beban Operasional"
	CategoryNonOperatingExpense = "Beban Non-Operasional"
)

// DefaultChartOfAccounts is the starter chart installed on an empty registry.
func DefaultChartOfAccounts() []Account {
	return []Account{
		{Code: "1101", Name: "Kas", Type: Asset, Category: CategoryCashAndBank, NormalBalance: NormalDebit},
		{Code: "1201", Name: "Persediaan", Type: Asset, Category: CategoryInventory, NormalBalance: NormalDebit},
		{Code: "1301", Name: "Peralatan", Type: Asset, Category: CategoryFixedAsset, NormalBalance: NormalDebit},
		{Code: "1311", Name: "Akumulasi Penyusutan", Type: ContraAsset, Category: CategoryFixedAsset, NormalBalance: NormalCredit},
		{Code: "2101", Name: "Utang Usaha", Type: Liability, Category: CategoryCurrentLiability, NormalBalance: NormalCredit},
		{Code: "2102", Name: "Utang Lain-lain", Type: Liability, Category: CategoryCurrentLiability, NormalBalance: NormalCredit},
		{Code: "3101", Name: "Modal Disetor", Type: Equity, Category: CategoryCapital, NormalBalance: NormalCredit},
		{Code: "3102", Name: "Prive", Type: Equity, Category: CategoryCapital, NormalBalance: NormalDebit},
		{Code: "3901", Name: "Ikhtisar Laba Rugi", Type: Equity, Category: CategoryIncomeSummary, NormalBalance: NormalCredit},
		{Code: "4101", Name: "Penjualan", Type: Revenue, Category: CategoryRevenue, NormalBalance: NormalCredit},
		{Code: "4102", Name: "Penjualan Lain-lain", Type: Revenue, Category: CategoryOtherRevenue, NormalBalance: NormalCredit},
		{Code: "5101", Name: "Pembelian", Type: Expense, Category: CategoryCostOfGoods, NormalBalance: NormalDebit},
		{Code: "5201", Name: "Beban Transportasi", Type: Expense, Category: CategoryOperatingExpense, NormalBalance: NormalDebit},
		{Code: "5202", Name: "Beban Tenaga Kerja", Type: Expense, Category: CategoryOperatingExpense, NormalBalance: NormalDebit},
		{Code: "5203", Name: "Beban Sewa", Type: Expense, Category: CategoryOperatingExpense, NormalBalance: NormalDebit},
		{Code: "5204", Name: "Beban Perbaikan", Type: Expense, Category: CategoryOperatingExpense, NormalBalance: NormalDebit},
		{Code: "5301", Name: "Beban Penyusutan", Type: Expense, Category: CategoryNonOperatingExpense, NormalBalance: NormalDebit},
		{Code: "5901", Name: "HPP", Type: Expense, Category: CategoryCostOfGoods, NormalBalance: NormalDebit},
	}
}

// internal/client/client.go

// Package client 依能力分組驅動帳戶交易。
// BankClient 只認得 account 套件的兩個能力介面，從不檢查具體型別。
package client

import (
	"github.com/shopspring/decimal"

	"lspbank/internal/account"
)

// Plan 為一次 ProcessTransactions 使用的固定金額。
//   - Deposit / Withdraw：每個可提款帳戶先存後提的金額
//   - FixedDeposit：每個僅可存款帳戶的存款金額
type Plan struct {
	Deposit      decimal.Decimal
	Withdraw     decimal.Decimal
	FixedDeposit decimal.Decimal
}

// DefaultPlan 回傳 1000 / 500 / 5000。
func DefaultPlan() Plan {
	return Plan{
		Deposit:      decimal.NewFromInt(1000),
		Withdraw:     decimal.NewFromInt(500),
		FixedDeposit: decimal.NewFromInt(5000),
	}
}

// Option 調整 BankClient 的設定。
type Option func(*BankClient)

// WithPlan 以 p 取代預設金額。
func WithPlan(p Plan) Option {
	return func(c *BankClient) { c.plan = p }
}

// BankClient 持有兩組帳戶，分別對應兩種能力；同一帳戶不應同時出現在兩組。
type BankClient struct {
	withdrawable []account.WithdrawableAccount
	depositOnly  []account.DepositOnlyAccount
	plan         Plan
}

// NewBankClient 建立 client。傳入的切片會被複製，呼叫端之後的修改不影響 client。
func NewBankClient(withdrawable []account.WithdrawableAccount, depositOnly []account.DepositOnlyAccount, opts ...Option) *BankClient {
	c := &BankClient{
		withdrawable: append([]account.WithdrawableAccount(nil), withdrawable...),
		depositOnly:  append([]account.DepositOnlyAccount(nil), depositOnly...),
		plan:         DefaultPlan(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ProcessTransactions 依插入順序處理：
//  1. 每個可提款帳戶：Deposit(plan.Deposit) 後 Withdraw(plan.Withdraw)
//  2. 每個僅可存款帳戶：Deposit(plan.FixedDeposit)
//
// 結果只透過各帳戶的輸出呈現，本身不回傳任何值。
func (c *BankClient) ProcessTransactions() {
	for _, acc := range c.withdrawable {
		acc.Deposit(c.plan.Deposit)
		acc.Withdraw(c.plan.Withdraw)
	}
	for _, acc := range c.depositOnly {
		acc.Deposit(c.plan.FixedDeposit)
	}
}

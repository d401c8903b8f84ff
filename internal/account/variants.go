// internal/account/variants.go
//
// 三種具體帳戶。各自擁有獨立餘額，建立時為 0。
// FixedTermAccount 刻意不提供 Withdraw，因此無法被當作 WithdrawableAccount 使用。

package account

import (
	"io"

	"github.com/shopspring/decimal"
)

var (
	_ WithdrawableAccount = (*SavingAccount)(nil)
	_ WithdrawableAccount = (*CurrentAccount)(nil)
	_ DepositOnlyAccount  = (*FixedTermAccount)(nil)
	_ Balancer            = (*FixedTermAccount)(nil)
)

// SavingAccount 活期儲蓄帳戶：可存可提。
type SavingAccount struct {
	ledger
}

// NewSavingAccount 建立餘額為 0 的儲蓄帳戶，報表行寫入 w（nil 則丟棄）。
func NewSavingAccount(w io.Writer) *SavingAccount {
	return &SavingAccount{ledger: newLedger(KindSaving, w)}
}

// Withdraw 餘額足夠才扣款；不足時只輸出提示。
func (a *SavingAccount) Withdraw(amount decimal.Decimal) {
	a.settleWithdraw(amount)
}

// CurrentAccount 支票帳戶：可存可提。
type CurrentAccount struct {
	ledger
}

func NewCurrentAccount(w io.Writer) *CurrentAccount {
	return &CurrentAccount{ledger: newLedger(KindCurrent, w)}
}

func (a *CurrentAccount) Withdraw(amount decimal.Decimal) {
	a.settleWithdraw(amount)
}

// FixedTermAccount 定存帳戶：只能存款。
type FixedTermAccount struct {
	ledger
}

func NewFixedTermAccount(w io.Writer) *FixedTermAccount {
	return &FixedTermAccount{ledger: newLedger(KindFixedTerm, w)}
}

// Package account 定義帳戶的「能力介面」與三種具體帳戶。
// 本檔只描述契約與交易紀錄結構，不含任何輸出或設定細節。

package account

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DepositOnlyAccount 只保證可以存款。
type DepositOnlyAccount interface {
	Deposit(amount decimal.Decimal)
}

// WithdrawableAccount 在存款之外另保證可以提款。
// 任何 WithdrawableAccount 都可以放進需要 DepositOnlyAccount 的地方。
type WithdrawableAccount interface {
	DepositOnlyAccount
	Withdraw(amount decimal.Decimal)
}

// Balancer 讀取目前餘額；不屬於任何一種能力契約。
type Balancer interface {
	Balance() decimal.Decimal
}

// Kind 是帳戶類型在報表行中的名稱。
type Kind string

const (
	KindSaving    Kind = "Savings Account"
	KindCurrent   Kind = "Current Account"
	KindFixedTerm Kind = "Fixed Term Account"
)

// Op 為交易種類。
type Op string

const (
	OpDeposit  Op = "deposit"
	OpWithdraw Op = "withdraw"
)

// Entry represents a transaction record.
// Applied 為 false 代表提款因餘額不足而被拒絕，Balance 維持操作前的值。
type Entry struct {
	ID      uuid.UUID       `json:"id"`
	Time    time.Time       `json:"time"`
	Op      Op              `json:"op"`
	Amount  decimal.Decimal `json:"amount"`
	Balance decimal.Decimal `json:"balance"`
	Applied bool            `json:"applied"`
}

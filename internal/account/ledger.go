// internal/account/ledger.go

package account

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ledger 保存單一帳戶的餘額與交易紀錄，並把每次操作的結果寫到 out。
// 三種帳戶都內嵌它；提款只以未匯出的 withdraw 提供，
// 由各帳戶自行決定是否公開 Withdraw。
type ledger struct {
	id      uuid.UUID
	kind    Kind
	out     io.Writer
	balance decimal.Decimal
	entries []Entry
}

func newLedger(kind Kind, w io.Writer) ledger {
	if w == nil {
		w = io.Discard
	}
	return ledger{id: uuid.New(), kind: kind, out: w}
}

// ID 回傳建立時配發的帳戶 ID。
func (l *ledger) ID() uuid.UUID { return l.id }

// Kind 回傳帳戶類型名稱。
func (l *ledger) Kind() Kind { return l.kind }

// Balance 回傳目前餘額。
func (l *ledger) Balance() decimal.Decimal { return l.balance }

// Entries 回傳交易紀錄的拷貝（由舊到新），避免外部修改內部切片。
func (l *ledger) Entries() []Entry {
	out := make([]Entry, len(l.entries))
	copy(out, l.entries)
	return out
}

// Deposit 無條件把 amount 加進餘額；負數金額同樣照加。
func (l *ledger) Deposit(amount decimal.Decimal) {
	l.balance = l.balance.Add(amount)
	l.record(OpDeposit, amount, true)
	fmt.Fprintf(l.out, "Deposited: %s in %s. New Balance: %s\n", amount, l.kind, l.balance)
}

// withdraw 僅在 balance >= amount 時扣款，否則回傳 ErrInsufficient 且不改動餘額。
func (l *ledger) withdraw(amount decimal.Decimal) error {
	if l.balance.LessThan(amount) {
		l.record(OpWithdraw, amount, false)
		return ErrInsufficient
	}
	l.balance = l.balance.Sub(amount)
	l.record(OpWithdraw, amount, true)
	return nil
}

// settleWithdraw 執行提款並輸出結果；餘額不足只印提示，不往上傳遞。
func (l *ledger) settleWithdraw(amount decimal.Decimal) {
	if err := l.withdraw(amount); err != nil {
		if errors.Is(err, ErrInsufficient) {
			fmt.Fprintf(l.out, "Insufficient funds in %s!\n", l.kind)
		}
		return
	}
	fmt.Fprintf(l.out, "Withdrawn: %s from %s. New Balance: %s\n", amount, l.kind, l.balance)
}

func (l *ledger) record(op Op, amount decimal.Decimal, applied bool) {
	l.entries = append(l.entries, Entry{
		ID:      uuid.New(),
		Time:    time.Now(),
		Op:      op,
		Amount:  amount,
		Balance: l.balance,
		Applied: applied,
	})
}

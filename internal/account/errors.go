// internal/account/errors.go
//
// 帳戶層的領域錯誤。
// 餘額不足只在 ledger 內部流轉，最後轉成一行提示訊息，不會回傳給呼叫端。

package account

import "errors"

// ErrInsufficient 代表餘額不足，提款未被套用。
var ErrInsufficient = errors.New("insufficient funds")

// cmd/lspbank/main.go

// 組裝三種帳戶並依能力分組交給 BankClient 處理。
// 帳戶報表行寫到 stdout；啟動與設定訊息透過 log 寫到 stderr。

package main

import (
	"log"
	"os"

	"github.com/joho/godotenv"

	"lspbank/internal/account"
	"lspbank/internal/client"
	"lspbank/internal/config"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg, err := config.Load("")
	if err != nil {
		log.Fatalf("cannot load config: %v", err)
	}
	plan, err := cfg.Plan()
	if err != nil {
		log.Fatalf("invalid amounts: %v", err)
	}

	// 以能力介面持有具體帳戶，client 不需要知道實際型別
	var (
		savings account.WithdrawableAccount = account.NewSavingAccount(os.Stdout)
		current account.WithdrawableAccount = account.NewCurrentAccount(os.Stdout)
		fixed   account.DepositOnlyAccount  = account.NewFixedTermAccount(os.Stdout)
	)

	c := client.NewBankClient(
		[]account.WithdrawableAccount{savings, current},
		[]account.DepositOnlyAccount{fixed},
		client.WithPlan(plan),
	)
	c.ProcessTransactions()
}

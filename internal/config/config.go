// Package config 讀取交易金額設定。
// 使用 Viper 從 env 格式檔案與環境變數讀值；環境變數優先於檔案。
package config

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spf13/viper"

	"lspbank/internal/client"
)

// Config stores all configuration for the application.
// 金額以字串保存，交給 Plan() 以 decimal 解析，避免浮點誤差。
type Config struct {
	DepositAmount      string `mapstructure:"DEPOSIT_AMOUNT"`
	WithdrawAmount     string `mapstructure:"WITHDRAW_AMOUNT"`
	FixedDepositAmount string `mapstructure:"FIXED_DEPOSIT_AMOUNT"`
}

// Load 讀取設定。path 為空時在工作目錄尋找 .env，找不到就只用預設值與環境變數；
// 指定 path 但讀取失敗則回傳錯誤。
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigType("env")
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.AddConfigPath(".")
		v.SetConfigName(".env")
	}
	v.AutomaticEnv()

	v.SetDefault("DEPOSIT_AMOUNT", "1000")
	v.SetDefault("WITHDRAW_AMOUNT", "500")
	v.SetDefault("FIXED_DEPOSIT_AMOUNT", "5000")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	return &cfg, nil
}

// Plan 把設定轉成 client.Plan；任一金額無法解析即回傳帶鍵名的錯誤。
func (c *Config) Plan() (client.Plan, error) {
	var p client.Plan
	fields := []struct {
		key string
		raw string
		dst *decimal.Decimal
	}{
		{"DEPOSIT_AMOUNT", c.DepositAmount, &p.Deposit},
		{"WITHDRAW_AMOUNT", c.WithdrawAmount, &p.Withdraw},
		{"FIXED_DEPOSIT_AMOUNT", c.FixedDepositAmount, &p.FixedDeposit},
	}
	for _, f := range fields {
		v, err := decimal.NewFromString(f.raw)
		if err != nil {
			return client.Plan{}, fmt.Errorf("%s: %w", f.key, err)
		}
		*f.dst = v
	}
	return p, nil
}

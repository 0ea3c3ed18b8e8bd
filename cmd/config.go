package cmd

type Config struct {
	HTTPPort           string
	DBHost             string
	DBPort             string
	DBUser             string
	DBPassword         string
	DBName             string
	DBSslMode          string
	PayFastMerchantID  string
	PayFastMerchantKey string
	PayFastPassphrase  string
	PayFastReturnURL   string
	PayFastCancelURL   string
	PayFastNotifyURL   string
	PayFastSandbox     string
}

package bitbankapi

import "strings"

// SupportedPairs is the list of spot pairs tradable on bitbank.
// New listings are announced at https://bitbank.cc/announcements
var SupportedPairs = []string{
	"btc_jpy",
	"xrp_jpy",
	"xrp_btc",
	"ltc_jpy",
	"ltc_btc",
	"eth_jpy",
	"eth_btc",
	"mona_jpy",
	"mona_btc",
	"bcc_jpy",
	"bcc_btc",
	"xlm_jpy",
	"xlm_btc",
	"qtum_jpy",
	"qtum_btc",
	"bat_jpy",
	"bat_btc",
	"omg_jpy",
	"omg_btc",
	"xym_jpy",
	"xym_btc",
	"link_jpy",
	"link_btc",
	"mkr_jpy",
	"mkr_btc",
	"boba_jpy",
	"boba_btc",
	"enj_jpy",
	"enj_btc",
	"matic_jpy",
	"matic_btc",
	"dot_jpy",
	"doge_jpy",
	"astr_jpy",
	"ada_jpy",
	"avax_jpy",
	"axs_jpy",
	"flr_jpy",
	"sand_jpy",
	"gala_jpy",
	"ape_jpy",
	"chz_jpy",
	"oas_jpy",
	"mana_jpy",
	"grt_jpy",
	"bnb_jpy",
	"dai_jpy",
	"op_jpy",
	"arb_jpy",
	"sol_jpy",
}

var supportedPairSet = func() map[string]struct{} {
	m := make(map[string]struct{}, len(SupportedPairs))
	for _, p := range SupportedPairs {
		m[p] = struct{}{}
	}
	return m
}()

// IsSupportedPair reports whether pair (case-insensitive) is a known spot pair.
func IsSupportedPair(pair string) bool {
	_, ok := supportedPairSet[strings.ToLower(pair)]
	return ok
}

// SplitPair splits "btc_jpy" into its base and quote assets.
func SplitPair(pair string) (base, quote string, ok bool) {
	idx := strings.IndexByte(pair, '_')
	if idx <= 0 || idx == len(pair)-1 {
		return "", "", false
	}

	return pair[:idx], pair[idx+1:], true
}

package catalog

import "github.com/tirasundara/gwas-standardizer/internal/domain"

// gwasColumns is the built-in GWAS summary statistics schema. Required columns come first
var gwasColumns = []domain.CanonicalColumn{
	// Required
	{Name: "VARIANT_ID", Required: true, ExpectedType: domain.TypeString, Aliases: []string{"variant_id", "snp", "markername", "id"}},
	{Name: "CHR", Required: true, ExpectedType: domain.TypeString, Aliases: []string{"chrom", "chromosome", "#chr", "chr_name"}},
	{Name: "BP", Required: true, ExpectedType: domain.TypeInteger, Aliases: []string{"pos", "position", "basepair", "base_pair_location"}},
	{Name: "EA", Required: true, ExpectedType: domain.TypeString, Aliases: []string{"effect_allele", "alt", "allele1", "a1"}},
	{Name: "NEA", Required: true, ExpectedType: domain.TypeString, Aliases: []string{"non_effect_allele", "ref", "allele2", "a2", "other_allele"}},
	{Name: "EAF", Required: true, ExpectedType: domain.TypeFloat, Aliases: []string{"effect_allele_frequency", "freq", "maf", "frq"}},
	{Name: "EFFECT", Required: true, ExpectedType: domain.TypeFloat, Aliases: []string{"beta", "b", "effect_size"}},
	{Name: "STDERR", Required: true, ExpectedType: domain.TypeFloat, Aliases: []string{"se", "standard_error"}},
	{Name: "P_VALUE", Required: true, ExpectedType: domain.TypeFloat, Aliases: []string{"p", "pval", "pvalue", "p.value"}},
	{Name: "N", Required: true, ExpectedType: domain.TypeInteger, Aliases: []string{"n", "sample_size", "samplesize"}},

	// Optional
	{Name: "RSID", ExpectedType: domain.TypeString, Aliases: []string{"rs_id", "rs", "snp_rsid"}},
	{Name: "OR", ExpectedType: domain.TypeFloat, Aliases: []string{"odds_ratio", "oddsratio"}},
	{Name: "INFO", ExpectedType: domain.TypeFloat, Aliases: []string{"info_score", "imputation_quality", "rsq"}},
	{Name: "N_CASES", ExpectedType: domain.TypeInteger, Aliases: []string{"n_case", "ncases", "num_cases"}},
	{Name: "N_CONTROLS", ExpectedType: domain.TypeInteger, Aliases: []string{"n_control", "ncontrols", "num_controls"}},
	{Name: "IMPUTED", ExpectedType: domain.TypeInteger, Aliases: []string{"imputed_status", "was_imputed"}},
}

var defaultCatalog = MustNew(gwasColumns...)

// Default returns the process-wide GWAS catalog
func Default() *Catalog {
	return defaultCatalog
}

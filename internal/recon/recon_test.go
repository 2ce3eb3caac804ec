package recon

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/netproof-dev/netproof/internal/model"
)

func statement(rows ...model.Row) model.Statement {
	return model.Statement{Columns: allColumns(), Rows: rows}
}

func TestReconcile_ReversalPairMatches(t *testing.T) {
	st := statement(
		txRow("REVERSAL 99999999", "500", ""),
		txRow("REVERSAL 99999999", "", "500"),
	)

	res, err := Reconcile(st)
	require.NoError(t, err)

	assert.Empty(t, res.Unmatched)
	require.Len(t, res.Matched, 2)
	assert.Equal(t, 2, res.Summary.Matched)
	assert.Equal(t, 0, res.Summary.Unmatched)
	assert.True(t, res.Matched[0].Amount.Decimal.Equal(dec("500")))
	assert.True(t, res.Matched[1].Amount.Decimal.Equal(dec("-500")))
}

func TestReconcile_LoneConsultingFeeUnmatched(t *testing.T) {
	st := statement(txRow("Consulting Fee", "1000", ""))

	keys, err := DeriveKeys(st)
	require.NoError(t, err)
	require.Len(t, keys, 1)
	assert.Equal(t, "CONSULTINGFEE_1000.0", keys[0].MatchKey)

	res, err := Reconcile(st)
	require.NoError(t, err)
	assert.Empty(t, res.Matched)
	require.Len(t, res.Unmatched, 1)
	assert.True(t, res.Summary.UnmatchedNet.Equal(dec("1000")))
}

func TestReconcile_MissingColumnFailsBeforeRows(t *testing.T) {
	st := model.Statement{
		Columns: []string{"Date", "Reference", "Description", "Value", "Deposit", "Withdrawal"},
		Rows:    []model.Row{txRow("anything", "1", "")},
	}
	res, err := Reconcile(st)
	require.Error(t, err)
	assert.Nil(t, res)

	var serr *SchemaError
	require.ErrorAs(t, err, &serr)
	assert.Equal(t, []string{"Balance"}, serr.Missing)
}

func TestReconcile_NoBalanceRowsWholeTableIsBody(t *testing.T) {
	st := statement(
		txRow("REVERSAL 99999999", "500", ""),
		txRow("REVERSAL 99999999", "", "500"),
		txRow("Consulting Fee", "1000", ""),
	)
	res, err := Reconcile(st)
	require.NoError(t, err)

	assert.Equal(t, 3, res.Summary.Transactions)
	assert.Len(t, res.Matched, 2)
	// No opening/closing rows reattached.
	require.Len(t, res.Unmatched, 1)
	assert.Equal(t, "Consulting Fee", res.Unmatched[0].Description)
}

func TestReconcile_BalanceRowsReattached(t *testing.T) {
	st := statement(
		balRow("100"),
		txRow("Office Rent", "", "750"),
		balRow("-650"),
	)
	res, err := Reconcile(st)
	require.NoError(t, err)

	require.Len(t, res.Unmatched, 3)
	assert.True(t, res.Unmatched[0].IsBalance())
	assert.False(t, res.Unmatched[0].Amount.Valid)
	assert.Equal(t, "Office Rent", res.Unmatched[1].Description)
	assert.True(t, res.Unmatched[1].Amount.Decimal.Equal(dec("-750")))
	assert.True(t, res.Unmatched[2].IsBalance())
}

func TestReconcile_PartitionIsComplete(t *testing.T) {
	st := statement(
		balRow("0"),
		txRow("REVERSAL 99999999", "500", ""),
		txRow("Vendor Invoice 12345678", "", "42.42"),
		txRow("Vendor Invoice 12345678", "42.42", ""),
		txRow("REVERSAL 99999999", "", "500"),
		txRow("Consulting Fee", "1000", ""),
		txRow("misc", "", "3.50"),
		balRow("0"),
	)
	res, err := Reconcile(st)
	require.NoError(t, err)

	body := 6
	assert.Equal(t, body, res.Summary.Transactions)
	assert.Equal(t, body, res.Summary.Matched+res.Summary.Unmatched)
	// Two balance rows reattached around the unmatched transactions.
	assert.Len(t, res.Unmatched, res.Summary.Unmatched+2)
	assert.Len(t, res.Matched, res.Summary.Matched)
}

func TestReconcile_MatchedGroupsSumToZero(t *testing.T) {
	st := statement(
		txRow("REVERSAL 99999999", "500", ""),
		txRow("REVERSAL 99999999", "", "500"),
		txRow("Office Rent March", "900", ""),
		txRow("Office Rent March", "", "900"),
		txRow("Consulting Fee", "1000", ""),
	)
	res, err := Reconcile(st)
	require.NoError(t, err)

	keys, err := DeriveKeys(st)
	require.NoError(t, err)
	keyByDesc := make(map[string]string)
	sums := make(map[string]decimal.Decimal)
	for _, k := range keys {
		keyByDesc[k.Row.Description] = k.MatchKey
		sums[k.MatchKey] = sums[k.MatchKey].Add(k.Net)
	}

	matchedKeys := make(map[string]bool)
	for _, r := range res.Matched {
		matchedKeys[keyByDesc[r.Description]] = true
	}
	require.NotEmpty(t, matchedKeys)

	for key, sum := range sums {
		if matchedKeys[key] {
			assert.True(t, sum.Round(4).IsZero(), "matched group %s sums to %s", key, sum)
		} else {
			assert.False(t, sum.Round(4).IsZero(), "unmatched group %s sums to zero", key)
		}
	}
}

func TestReconcile_SharedReferenceNonZeroNetStaysUnmatched(t *testing.T) {
	// Same 8+ digit reference forces one group, but the group only counts as
	// matched when it actually nets to zero.
	st := statement(
		txRow("TRF 55556666 rent", "500", ""),
		txRow("TRF 55556666 fee", "", "300"),
	)
	res, err := Reconcile(st)
	require.NoError(t, err)
	assert.Empty(t, res.Matched)
	assert.Len(t, res.Unmatched, 2)
	assert.True(t, res.Summary.UnmatchedNet.Equal(dec("200")))
}

func TestReconcile_MatchedSortedByKey(t *testing.T) {
	st := statement(
		txRow("zzz pair", "10", ""),
		txRow("aaa pair", "20", ""),
		txRow("zzz pair", "", "10"),
		txRow("aaa pair", "", "20"),
	)
	res, err := Reconcile(st)
	require.NoError(t, err)

	require.Len(t, res.Matched, 4)
	assert.Equal(t, "aaa pair", res.Matched[0].Description)
	assert.Equal(t, "aaa pair", res.Matched[1].Description)
	assert.Equal(t, "zzz pair", res.Matched[2].Description)
	assert.Equal(t, "zzz pair", res.Matched[3].Description)
	// Stable sort keeps original order within a key.
	assert.True(t, res.Matched[0].Amount.Decimal.Equal(dec("20")))
	assert.True(t, res.Matched[1].Amount.Decimal.Equal(dec("-20")))
}

func TestReconcile_FourDecimalTolerance(t *testing.T) {
	// Residual below the 4th decimal place still counts as netted.
	st := statement(
		txRow("REVERSAL 99999999", "500.00002", ""),
		txRow("REVERSAL 99999999", "", "500"),
	)
	res, err := Reconcile(st)
	require.NoError(t, err)
	assert.Len(t, res.Matched, 2)

	st = statement(
		txRow("REVERSAL 99999999", "500.0002", ""),
		txRow("REVERSAL 99999999", "", "500"),
	)
	res, err = Reconcile(st)
	require.NoError(t, err)
	assert.Empty(t, res.Matched)
}

func TestReconcile_Idempotent(t *testing.T) {
	st := statement(
		balRow("100"),
		txRow("REVERSAL 99999999", "500", ""),
		txRow("REVERSAL 99999999", "", "500"),
		txRow("Consulting Fee", "1000", ""),
		balRow("600"),
	)
	first, err := Reconcile(st)
	require.NoError(t, err)
	second, err := Reconcile(st)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestReconcile_DoesNotMutateInput(t *testing.T) {
	rows := []model.Row{
		balRow("100"),
		txRow("REVERSAL 99999999", "500", ""),
		txRow("REVERSAL 99999999", "", "500"),
		balRow("100"),
	}
	snapshot := make([]model.Row, len(rows))
	copy(snapshot, rows)

	_, err := Reconcile(model.Statement{Columns: allColumns(), Rows: rows})
	require.NoError(t, err)
	assert.Equal(t, snapshot, rows)
}

func TestDeriveKeys_ReportsAllFields(t *testing.T) {
	st := statement(txRow("INV12345678 Office Rent", "", "250"))
	keys, err := DeriveKeys(st)
	require.NoError(t, err)
	require.Len(t, keys, 1)

	assert.Equal(t, "12345678", keys[0].NumericKey)
	assert.Equal(t, "INV12345678OFFICERENT", keys[0].TextKey)
	assert.True(t, keys[0].Net.Equal(dec("-250")))
	assert.Equal(t, "12345678", keys[0].MatchKey)
}

package normalize

import (
	"bitbucket.org/mmdatafocus/console_backend/config"
	"github.com/sirupsen/logrus"
)

// warnMissingId flags records that reconciled without an identifier.
// Only active under STRICT_RECONCILE_LOG; the record itself still goes
// through with defaults.
func warnMissingId(entity string, raw RawRecord) {
	if !config.StrictReconcileMode() {
		return
	}
	if raw.String("id", "uuid") != "" {
		return
	}
	config.GetLogger().WithFields(logrus.Fields{
		"module": "normalize",
		"entity": entity,
	}).Warn("record missing id; defaults applied")
}

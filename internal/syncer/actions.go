package syncer

// Apps Script doPost'un tanıdığı işlem adları
const (
	ActionSaveCheque       = "SAVE_CHEQUE"
	ActionSaveBatchCheques = "SAVE_BATCH_CHEQUES"
	ActionDeleteCheque     = "DELETE_CHEQUE"
	ActionSaveBranch       = "SAVE_BRANCH"
	ActionDeleteBranch     = "DELETE_BRANCH"
	ActionSaveChequeBook   = "SAVE_CHEQUEBOOK"
	ActionDeleteChequeBook = "DELETE_CHEQUEBOOK"
	ActionSaveUser         = "SAVE_USER"
	ActionDeleteUser       = "DELETE_USER"
)

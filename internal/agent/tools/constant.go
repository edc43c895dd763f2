package tools

const (
	deliveryStatusDescription = `כלי לבדיקת סטטוס משלוח.
השתמש בכלי זה כדי:
- לבדוק את מיקום החבילה הנוכחי
- לקבל זמן משלוח משוער
- לראות את העדכון האחרון על המשלוח`

	customerRecordDescription = `כלי לקריאה וכתיבה של מידע לקוחות ב-Google Sheets.
השתמש בכלי זה כדי:
- לקרוא מידע על לקוח לפי מספר טלפון
- לעדכן או להוסיף מידע לקוח חדש
- לרשום הזמנות ופרטי משלוח`

	turnLoggerDescription = `כלי לרישום שיחות צ'אט ב-Google Sheets.
השתמש בכלי זה כדי:
- לרשום הודעות מלקוחות
- לתעד את השיחה לצורך מעקב עתידי
- לשמור היסטוריית תקשורת עם הלקוח`
)

// Payload messages
const (
	msgShipmentFound    = "המשלוח %s נמצא כעת ב%s. סטטוס: %s"
	msgShipmentNotFound = "משלוח מספר %s לא נמצא במערכת. אנא בדוק את המספר ונסה שוב."
	errShipmentLookup   = "שגיאה בבדיקת סטטוס המשלוח"

	msgCustomerNotFound = "לקוח לא נמצא במערכת"
	msgCustomerUpdated  = "מידע הלקוח עודכן בהצלחה"
	msgCustomerAdded    = "לקוח חדש נוסף למערכת"
	errSheetsAccess     = "שגיאה בגישה ל-Google Sheets"
	errSheetsNotSet     = "Google Spreadsheet ID is not configured"

	msgLogStored        = "השיחה נרשמה בהצלחה ב-Google Sheets"
	msgLogNotConfigured = "השיחה נרשמה מקומית (Google Sheets לא מוגדר)"
	msgLogUnavailable   = "השיחה נרשמה מקומית (Google Sheets לא זמין)"
)

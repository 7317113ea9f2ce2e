package categories

// DefaultSet returns the standard budget lines of a personnel office.
func DefaultSet() []Category {
	return []Category{
		{Code: "UMPEG", Name: "Umum dan Kepegawaian", Description: "Belanja umum dan administrasi kepegawaian"},
		{Code: "RENVAL", Name: "Perencanaan dan Evaluasi", Description: "Kegiatan perencanaan dan evaluasi program"},
		{Code: "PIP", Name: "Pengelolaan Informasi Kepegawaian", Description: "Sistem dan data kepegawaian"},
		{Code: "BANGKOM", Name: "Pengembangan Kompetensi", Description: "Diklat dan pengembangan kompetensi pegawai"},
		{Code: "MP", Name: "Mutasi dan Promosi", Description: "Proses mutasi dan promosi pegawai"},
		{Code: "SPPD", Name: "Perjalanan Dinas", Description: "Surat perintah perjalanan dinas"},
	}
}

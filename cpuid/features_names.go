package cpuid

// Flag names for diagnostic output, keyed by bit position.

//nolint:gochecknoglobals
var F1EcxNames = map[F1Ecx]string{
	SSE3: "SSE3", PCLMULQDQ: "PCLMULQDQ", DTES64: "DTES64",
	MONITOR: "MONITOR", DS_CPL: "DS_CPL", VMX: "VMX", SMX: "SMX",
	EIST: "EIST", TM2: "TM2", SSSE3: "SSSE3", CNXT_ID: "CNXT_ID",
	SDBG: "SDBG", FMA: "FMA", CMPXCHG16B: "CMPXCHG16B", XTPRUC: "XTPRUC",
	PDCM: "PDCM", PCID: "PCID", DCA: "DCA", SSE4_1: "SSE4_1",
	SSE4_2: "SSE4_2", X2APIC: "X2APIC", MOVBE: "MOVBE", POPCNT: "POPCNT",
	TSC_DEADLINE: "TSC_DEADLINE", AESNI: "AESNI", XSAVE: "XSAVE",
	OSXSAVE: "OSXSAVE", AVX: "AVX", F16C: "F16C", RDRAND: "RDRAND",
	HYPERVISOR: "HYPERVISOR",
}

//nolint:gochecknoglobals
var F1EdxNames = map[F1Edx]string{
	FPU: "FPU", VME: "VME", DE: "DE", PSE: "PSE", TSC: "TSC", MSR: "MSR",
	PAE: "PAE", MCE: "MCE", CX8: "CX8", APIC: "APIC", SEP: "SEP",
	MTRR: "MTRR", PGE: "PGE", MCA: "MCA", CMOV: "CMOV", PAT: "PAT",
	PSE36: "PSE36", PSN: "PSN", CLFSH: "CLFSH", DTES: "DTES",
	ACPI: "ACPI", MMX: "MMX", FXSR: "FXSR", SSE: "SSE", SSE2: "SSE2",
	SS: "SS", HTT: "HTT", TM: "TM", PBE: "PBE",
}

//nolint:gochecknoglobals
var F6EaxNames = map[F6Eax]string{HWP: "HWP"}

//nolint:gochecknoglobals
var F6EcxNames = map[F6Ecx]string{HCF: "HCF"}

//nolint:gochecknoglobals
var F7_0EbxNames = map[F7_0Ebx]string{
	FSGSBASE: "FSGSBASE", TSC_ADJUST: "TSC_ADJUST", SGX: "SGX",
	BMI1: "BMI1", HLE: "HLE", AVX2: "AVX2",
	FDP_EXCP_ONLY: "FDP_EXCP_ONLY", SMEP: "SMEP", BMI2: "BMI2",
	ERMS: "ERMS", INVPCID: "INVPCID", RTM: "RTM", RDTM: "RDTM",
	DFPU_CS_DS: "DFPU_CS_DS", MPX: "MPX", RDTA: "RDTA",
	AVX512F: "AVX512F", AVX512DQ: "AVX512DQ", RDSEED: "RDSEED",
	ADX: "ADX", SMAP: "SMAP", AVX512_IFMA: "AVX512_IFMA",
	CLFLUSHOPT: "CLFLUSHOPT", CLWB: "CLWB", IPT: "IPT",
	AVX512PF: "AVX512PF", AVX512ER: "AVX512ER", AVX512CD: "AVX512CD",
	SHA: "SHA", AVX512BW: "AVX512BW", AVX512VL: "AVX512VL",
}

//nolint:gochecknoglobals
var F7_0EcxNames = map[F7_0Ecx]string{
	PREFETCHWT1: "PREFETCHWT1", AVX512_VBMI: "AVX512_VBMI", UMIP: "UMIP",
	PKU: "PKU", OSPKE: "OSPKE", WAITPKG: "WAITPKG",
	AVX512_VBMI2: "AVX512_VBMI2", CET_SS: "CET_SS", GFNI: "GFNI",
	VAES: "VAES", VPCLMULQDQ: "VPCLMULQDQ", AVX512_VNNI: "AVX512_VNNI",
	AVX512_BITALG: "AVX512_BITALG", TME_EN: "TME_EN",
	AVX512_VPOPCNTDQ: "AVX512_VPOPCNTDQ", LA57: "LA57",
	RDPID_TSCAUX: "RDPID_TSCAUX", KL: "KL",
	BUS_LOCK_DETECT: "BUS_LOCK_DETECT", CLDEMOTE: "CLDEMOTE",
	MOVDIRI: "MOVDIRI", MOVDIRI64B: "MOVDIRI64B", ENQCMD: "ENQCMD",
	SGX_LC: "SGX_LC", PKS: "PKS",
}

//nolint:gochecknoglobals
var F7_0EdxNames = map[F7_0Edx]string{
	SGX_KEYS: "SGX_KEYS", AVX512_4VNNIW: "AVX512_4VNNIW",
	AVX512_4FMAPS: "AVX512_4FMAPS", FSRM: "FSRM", UINTR: "UINTR",
	AVX512_VP2INTERSECT: "AVX512_VP2INTERSECT", SRBDS_CTRL: "SRBDS_CTRL",
	MD_CLEAR: "MD_CLEAR", RTM_ALWAYS_ABORT: "RTM_ALWAYS_ABORT",
	RTM_FORCE_ABORT: "RTM_FORCE_ABORT", SERIALIZE: "SERIALIZE",
	HYBRID: "HYBRID", TSXLDTRK: "TSXLDTRK", PCONFIG: "PCONFIG",
	LBR: "LBR", CET_IBT: "CET_IBT", AMX_BF16: "AMX_BF16",
	AVX512_FP16: "AVX512_FP16", AMX_TILE: "AMX_TILE",
	AMX_INT8: "AMX_INT8", IBRS_IBPB: "IBRS_IBPB", STIBP: "STIBP",
	L1D_FLUSH: "L1D_FLUSH", ARCH_CAP: "ARCH_CAP", CORE_CAP: "CORE_CAP",
	SSBD: "SSBD",
}

//nolint:gochecknoglobals
var F40000001EaxNames = map[F40000001Eax]string{
	KVM_FEATURE_PV_SEND_IPI: "KVM_FEATURE_PV_SEND_IPI",
}

//nolint:gochecknoglobals
var F80000001EdxNames = map[F80000001Edx]string{
	SYSCALL: "SYSCALL", NX: "NX", GBPAGES: "GBPAGES", RDTSCP: "RDTSCP",
	LM: "LM",
}

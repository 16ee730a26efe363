package cpuid

// Named capability bits for every CPUID leaf/register pair the kernel
// consults. Constant values are bit positions within the named register,
// which keeps the translation to a linear feature index (word*32 + bit)
// exact. Bit positions follow the Intel SDM Volume 2 "CPUID" chapter and
// the AMD64 APM Volume 3 Appendix E.
//
// Indices are hand-assigned and must never alias two distinct flags; the
// catalog test checks each set for overlaps.

// Feature is the union of all per-register capability flag sets.
type Feature interface {
	F1Ecx | F1Edx | F6Eax | F6Ecx | F7_0Ebx | F7_0Ecx | F7_0Edx |
		F40000001Eax | F80000001Edx
}

type (
	F1Ecx        uint32
	F1Edx        uint32
	F6Eax        uint32
	F6Ecx        uint32
	F7_0Ebx      uint32
	F7_0Ecx      uint32
	F7_0Edx      uint32
	F40000001Eax uint32
	F80000001Edx uint32
)

// Leaf 0x00000001 ECX.
//
//nolint:stylecheck
const (
	SSE3         F1Ecx = 0
	PCLMULQDQ    F1Ecx = 1
	DTES64       F1Ecx = 2
	MONITOR      F1Ecx = 3
	DS_CPL       F1Ecx = 4
	VMX          F1Ecx = 5
	SMX          F1Ecx = 6
	EIST         F1Ecx = 7
	TM2          F1Ecx = 8
	SSSE3        F1Ecx = 9
	CNXT_ID      F1Ecx = 10
	SDBG         F1Ecx = 11
	FMA          F1Ecx = 12
	CMPXCHG16B   F1Ecx = 13
	XTPRUC       F1Ecx = 14
	PDCM         F1Ecx = 15
	PCID         F1Ecx = 17
	DCA          F1Ecx = 18
	SSE4_1       F1Ecx = 19
	SSE4_2       F1Ecx = 20
	X2APIC       F1Ecx = 21
	MOVBE        F1Ecx = 22
	POPCNT       F1Ecx = 23
	TSC_DEADLINE F1Ecx = 24
	AESNI        F1Ecx = 25
	XSAVE        F1Ecx = 26
	OSXSAVE      F1Ecx = 27
	AVX          F1Ecx = 28
	F16C         F1Ecx = 29
	RDRAND       F1Ecx = 30
	HYPERVISOR   F1Ecx = 31 /* Running under a hypervisor */
)

// Leaf 0x00000001 EDX. Feature-cache word 0.
//
//nolint:stylecheck
const (
	FPU    F1Edx = 0  /* Onboard FPU */
	VME    F1Edx = 1  /* Virtual Mode Extensions */
	DE     F1Edx = 2  /* Debugging Extensions */
	PSE    F1Edx = 3  /* Page Size Extensions */
	TSC    F1Edx = 4  /* Time Stamp Counter */
	MSR    F1Edx = 5  /* Model-Specific Registers */
	PAE    F1Edx = 6  /* Physical Address Extensions */
	MCE    F1Edx = 7  /* Machine Check Exception */
	CX8    F1Edx = 8  /* CMPXCHG8 instruction */
	APIC   F1Edx = 9  /* Onboard APIC */
	SEP    F1Edx = 11 /* SYSENTER/SYSEXIT */
	MTRR   F1Edx = 12 /* Memory Type Range Registers */
	PGE    F1Edx = 13 /* Page Global Enable */
	MCA    F1Edx = 14 /* Machine Check Architecture */
	CMOV   F1Edx = 15 /* CMOV instructions */
	PAT    F1Edx = 16 /* Page Attribute Table */
	PSE36  F1Edx = 17 /* 36-bit PSEs */
	PSN    F1Edx = 18 /* Processor serial number */
	CLFSH  F1Edx = 19 /* CLFLUSH instruction */
	DTES   F1Edx = 21 /* Debug Store */
	ACPI   F1Edx = 22 /* ACPI via MSR */
	MMX    F1Edx = 23 /* Multimedia Extensions */
	FXSR   F1Edx = 24 /* FXSAVE/FXRSTOR */
	SSE    F1Edx = 25
	SSE2   F1Edx = 26
	SS     F1Edx = 27 /* CPU self snoop */
	HTT    F1Edx = 28 /* Hyper-Threading */
	TM     F1Edx = 29 /* Automatic clock control */
	PBE    F1Edx = 31 /* Pending Break Enable */
)

// Leaf 0x00000006 EAX.
const (
	HWP F6Eax = 7
)

// Leaf 0x00000006 ECX.
const (
	HCF F6Ecx = 0 /* Hardware Coordination Feedback */
)

// Leaf 0x00000007 sub-leaf 0 EBX.
//
//nolint:stylecheck
const (
	FSGSBASE      F7_0Ebx = 0
	TSC_ADJUST    F7_0Ebx = 1
	SGX           F7_0Ebx = 2
	BMI1          F7_0Ebx = 3
	HLE           F7_0Ebx = 4
	AVX2          F7_0Ebx = 5
	FDP_EXCP_ONLY F7_0Ebx = 6
	SMEP          F7_0Ebx = 7
	BMI2          F7_0Ebx = 8
	ERMS          F7_0Ebx = 9
	INVPCID       F7_0Ebx = 10
	RTM           F7_0Ebx = 11
	RDTM          F7_0Ebx = 12
	DFPU_CS_DS    F7_0Ebx = 13
	MPX           F7_0Ebx = 14
	RDTA          F7_0Ebx = 15
	AVX512F       F7_0Ebx = 16
	AVX512DQ      F7_0Ebx = 17
	RDSEED        F7_0Ebx = 18
	ADX           F7_0Ebx = 19
	SMAP          F7_0Ebx = 20
	AVX512_IFMA   F7_0Ebx = 21
	CLFLUSHOPT    F7_0Ebx = 23
	CLWB          F7_0Ebx = 24
	IPT           F7_0Ebx = 25 /* Intel Processor Trace */
	AVX512PF      F7_0Ebx = 26
	AVX512ER      F7_0Ebx = 27
	AVX512CD      F7_0Ebx = 28
	SHA           F7_0Ebx = 29
	AVX512BW      F7_0Ebx = 30
	AVX512VL      F7_0Ebx = 31
)

// Leaf 0x00000007 sub-leaf 0 ECX.
//
//nolint:stylecheck
const (
	PREFETCHWT1      F7_0Ecx = 0
	AVX512_VBMI      F7_0Ecx = 1
	UMIP             F7_0Ecx = 2
	PKU              F7_0Ecx = 3
	OSPKE            F7_0Ecx = 4
	WAITPKG          F7_0Ecx = 5
	AVX512_VBMI2     F7_0Ecx = 6
	CET_SS           F7_0Ecx = 7
	GFNI             F7_0Ecx = 8
	VAES             F7_0Ecx = 9
	VPCLMULQDQ       F7_0Ecx = 10
	AVX512_VNNI      F7_0Ecx = 11
	AVX512_BITALG    F7_0Ecx = 12
	TME_EN           F7_0Ecx = 13
	AVX512_VPOPCNTDQ F7_0Ecx = 14
	LA57             F7_0Ecx = 16 /* 5-level paging */
	RDPID_TSCAUX     F7_0Ecx = 22
	KL               F7_0Ecx = 23
	BUS_LOCK_DETECT  F7_0Ecx = 24
	CLDEMOTE         F7_0Ecx = 25
	MOVDIRI          F7_0Ecx = 27
	MOVDIRI64B       F7_0Ecx = 28
	ENQCMD           F7_0Ecx = 29
	SGX_LC           F7_0Ecx = 30
	PKS              F7_0Ecx = 31
)

// Leaf 0x00000007 sub-leaf 0 EDX.
//
//nolint:stylecheck
const (
	SGX_KEYS            F7_0Edx = 1
	AVX512_4VNNIW       F7_0Edx = 2
	AVX512_4FMAPS       F7_0Edx = 3
	FSRM                F7_0Edx = 4 /* Fast Short Rep Mov */
	UINTR               F7_0Edx = 5
	AVX512_VP2INTERSECT F7_0Edx = 8
	SRBDS_CTRL          F7_0Edx = 9
	MD_CLEAR            F7_0Edx = 10 /* VERW clears CPU buffers */
	RTM_ALWAYS_ABORT    F7_0Edx = 11
	RTM_FORCE_ABORT     F7_0Edx = 13
	SERIALIZE           F7_0Edx = 14
	HYBRID              F7_0Edx = 15
	TSXLDTRK            F7_0Edx = 16
	PCONFIG             F7_0Edx = 18
	LBR                 F7_0Edx = 19
	CET_IBT             F7_0Edx = 20
	AMX_BF16            F7_0Edx = 22
	AVX512_FP16         F7_0Edx = 23
	AMX_TILE            F7_0Edx = 24
	AMX_INT8            F7_0Edx = 25
	IBRS_IBPB           F7_0Edx = 26 /* Speculation Control */
	STIBP               F7_0Edx = 27
	L1D_FLUSH           F7_0Edx = 28
	ARCH_CAP            F7_0Edx = 29 /* IA32_ARCH_CAPABILITIES MSR */
	CORE_CAP            F7_0Edx = 30
	SSBD                F7_0Edx = 31 /* Speculative Store Bypass Disable */
)

// Leaf 0x40000001 EAX.
//
//nolint:stylecheck
const (
	KVM_FEATURE_PV_SEND_IPI F40000001Eax = 11
)

// Leaf 0x80000001 EDX. Feature-cache word 1.
//
//nolint:stylecheck
const (
	SYSCALL F80000001Edx = 11 /* SYSCALL/SYSRET */
	NX      F80000001Edx = 20 /* Execute Disable */
	GBPAGES F80000001Edx = 26 /* 1GB pages */
	RDTSCP  F80000001Edx = 27
	LM      F80000001Edx = 29 /* Long Mode (64-bit) */
)

//nolint:gochecknoglobals
var AllF1Ecx = []F1Ecx{
	SSE3, PCLMULQDQ, DTES64, MONITOR, DS_CPL, VMX, SMX, EIST, TM2, SSSE3,
	CNXT_ID, SDBG, FMA, CMPXCHG16B, XTPRUC, PDCM, PCID, DCA, SSE4_1,
	SSE4_2, X2APIC, MOVBE, POPCNT, TSC_DEADLINE, AESNI, XSAVE, OSXSAVE,
	AVX, F16C, RDRAND, HYPERVISOR,
}

//nolint:gochecknoglobals
var AllF1Edx = []F1Edx{
	FPU, VME, DE, PSE, TSC, MSR, PAE, MCE, CX8, APIC, SEP, MTRR, PGE, MCA,
	CMOV, PAT, PSE36, PSN, CLFSH, DTES, ACPI, MMX, FXSR, SSE, SSE2, SS,
	HTT, TM, PBE,
}

//nolint:gochecknoglobals
var AllF6Eax = []F6Eax{HWP}

//nolint:gochecknoglobals
var AllF6Ecx = []F6Ecx{HCF}

//nolint:gochecknoglobals
var AllF7_0Ebx = []F7_0Ebx{
	FSGSBASE, TSC_ADJUST, SGX, BMI1, HLE, AVX2, FDP_EXCP_ONLY, SMEP, BMI2,
	ERMS, INVPCID, RTM, RDTM, DFPU_CS_DS, MPX, RDTA, AVX512F, AVX512DQ,
	RDSEED, ADX, SMAP, AVX512_IFMA, CLFLUSHOPT, CLWB, IPT, AVX512PF,
	AVX512ER, AVX512CD, SHA, AVX512BW, AVX512VL,
}

//nolint:gochecknoglobals
var AllF7_0Ecx = []F7_0Ecx{
	PREFETCHWT1, AVX512_VBMI, UMIP, PKU, OSPKE, WAITPKG, AVX512_VBMI2,
	CET_SS, GFNI, VAES, VPCLMULQDQ, AVX512_VNNI, AVX512_BITALG, TME_EN,
	AVX512_VPOPCNTDQ, LA57, RDPID_TSCAUX, KL, BUS_LOCK_DETECT, CLDEMOTE,
	MOVDIRI, MOVDIRI64B, ENQCMD, SGX_LC, PKS,
}

//nolint:gochecknoglobals
var AllF7_0Edx = []F7_0Edx{
	SGX_KEYS, AVX512_4VNNIW, AVX512_4FMAPS, FSRM, UINTR,
	AVX512_VP2INTERSECT, SRBDS_CTRL, MD_CLEAR, RTM_ALWAYS_ABORT,
	RTM_FORCE_ABORT, SERIALIZE, HYBRID, TSXLDTRK, PCONFIG, LBR, CET_IBT,
	AMX_BF16, AVX512_FP16, AMX_TILE, AMX_INT8, IBRS_IBPB, STIBP,
	L1D_FLUSH, ARCH_CAP, CORE_CAP, SSBD,
}

//nolint:gochecknoglobals
var AllF40000001Eax = []F40000001Eax{KVM_FEATURE_PV_SEND_IPI}

//nolint:gochecknoglobals
var AllF80000001Edx = []F80000001Edx{SYSCALL, NX, GBPAGES, RDTSCP, LM}

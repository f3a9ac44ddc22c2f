package thcore

import "fmt"

// NR identifies one kernel service. The values are the asm-generic
// 64-bit table, which is the native table of the riscv64 and
// loongarch64 builds of the kernel under test. An invocation with a
// wrong number silently requests a different service, so these are
// part of the wire contract and must not be remapped per host.
type NR uint64

const (
	NR_getcwd       NR = 17
	NR_dup          NR = 23
	NR_dup3         NR = 24
	NR_mkdirat      NR = 34
	NR_unlinkat     NR = 35
	NR_linkat       NR = 37
	NR_umount2      NR = 39
	NR_mount        NR = 40
	NR_chdir        NR = 49
	NR_openat       NR = 56
	NR_close        NR = 57
	NR_pipe2        NR = 59
	NR_getdents64   NR = 61
	NR_lseek        NR = 62
	NR_read         NR = 63
	NR_write        NR = 64
	NR_fstatat      NR = 79
	NR_fstat        NR = 80
	NR_exit         NR = 93
	NR_exit_group   NR = 94
	NR_nanosleep    NR = 101
	NR_sched_yield  NR = 124
	NR_setpriority  NR = 140
	NR_times        NR = 153
	NR_uname        NR = 160
	NR_gettimeofday NR = 169
	NR_getpid       NR = 172
	NR_getppid      NR = 173
	NR_brk          NR = 214
	NR_munmap       NR = 215
	NR_clone        NR = 220
	NR_execve       NR = 221
	NR_mmap         NR = 222
	NR_wait4        NR = 260
	NR_statx        NR = 291
)

var nrNames = map[NR]string{
	NR_getcwd:       "getcwd",
	NR_dup:          "dup",
	NR_dup3:         "dup3",
	NR_mkdirat:      "mkdirat",
	NR_unlinkat:     "unlinkat",
	NR_linkat:       "linkat",
	NR_umount2:      "umount2",
	NR_mount:        "mount",
	NR_chdir:        "chdir",
	NR_openat:       "openat",
	NR_close:        "close",
	NR_pipe2:        "pipe2",
	NR_getdents64:   "getdents64",
	NR_lseek:        "lseek",
	NR_read:         "read",
	NR_write:        "write",
	NR_fstatat:      "fstatat",
	NR_fstat:        "fstat",
	NR_exit:         "exit",
	NR_exit_group:   "exit_group",
	NR_nanosleep:    "nanosleep",
	NR_sched_yield:  "sched_yield",
	NR_setpriority:  "setpriority",
	NR_times:        "times",
	NR_uname:        "uname",
	NR_gettimeofday: "gettimeofday",
	NR_getpid:       "getpid",
	NR_getppid:      "getppid",
	NR_brk:          "brk",
	NR_munmap:       "munmap",
	NR_clone:        "clone",
	NR_execve:       "execve",
	NR_mmap:         "mmap",
	NR_wait4:        "wait4",
	NR_statx:        "statx",
}

func (nr NR) String() string {
	if name, ok := nrNames[nr]; ok {
		return name
	}
	return fmt.Sprintf("NR(%d)", uint64(nr))
}

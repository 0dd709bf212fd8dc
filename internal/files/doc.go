// Package files handles filesystem housekeeping: report backups,
// day-stamped log files and their retention sweeps, and the disk
// space precheck.
package files
